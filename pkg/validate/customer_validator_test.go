package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/shop_backend/pkg/validate"
)

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	v := validate.NewCustomerValidator()
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		username string
		password string
		wantErr  bool
	}{
		{"ok", "guest@woowa.com", "guest", "password-1", false},
		{"пустой email", "", "guest", "password-1", true},
		{"битый email", "not-an-email", "guest", "password-1", true},
		{"пустое имя", "guest@woowa.com", "   ", "password-1", true},
		{"длинное имя", "guest@woowa.com", strings.Repeat("a", 33), "password-1", true},
		{"короткий пароль", "guest@woowa.com", "guest", "1234567", true},
		{"длинный пароль", "guest@woowa.com", "guest", strings.Repeat("p", 65), true},
		{"пароль по нижней границе", "guest@woowa.com", "guest", "12345678", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v.ValidateRegistration(ctx, tc.email, tc.username, tc.password)
			if tc.wantErr {
				if !errors.Is(err, validate.ErrInvalidRequest) {
					t.Fatalf("want ErrInvalidRequest, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()

	v := validate.NewCustomerValidator()
	ctx := context.Background()

	if err := v.ValidateUpdate(ctx, "renamed", "new-password-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.ValidateUpdate(ctx, "", "new-password-1"); !errors.Is(err, validate.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest for empty username, got %v", err)
	}
	if err := v.ValidateUpdate(ctx, "renamed", "short"); !errors.Is(err, validate.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest for short password, got %v", err)
	}
}
