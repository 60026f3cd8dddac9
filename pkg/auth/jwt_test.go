package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/shop_backend/pkg/auth"
)

func TestIssueParse_Roundtrip(t *testing.T) {
	t.Parallel()

	j := auth.NewJWT("test-secret", time.Hour)

	token, err := j.Issue(7, "guest")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, username, err := j.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 7 || username != "guest" {
		t.Fatalf("want id=7 username=guest, got id=%d username=%q", id, username)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := auth.NewJWT("secret-a", time.Hour)
	verifier := auth.NewJWT("secret-b", time.Hour)

	token, err := issuer.Issue(7, "guest")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, _, err := verifier.Parse(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	j := auth.NewJWT("test-secret", time.Nanosecond)

	token, err := j.Issue(7, "guest")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, _, err := j.Parse(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	t.Parallel()

	j := auth.NewJWT("test-secret", time.Hour)

	if _, _, err := j.Parse("not-a-jwt"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}
