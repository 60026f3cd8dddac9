package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/internal/ports/mocks"
	"github.com/Gunvolt24/shop_backend/internal/usecase"
	"github.com/Gunvolt24/shop_backend/pkg/validate"
	"github.com/golang/mock/gomock"
)

const (
	custEmail    = "guest@woowa.com"
	custUsername = "guest"
	custPassword = "password-1"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	gomock.InOrder(
		validator.EXPECT().ValidateRegistration(gomock.Any(), custEmail, custUsername, custPassword).Return(nil),
		repo.EXPECT().ExistsByEmail(gomock.Any(), custEmail).Return(false, nil),
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&domain.Customer{})).Return(int64(1), nil),
	)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	got, err := svc.Register(context.Background(), custEmail, custUsername, custPassword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 || got.Email != custEmail || got.Username != custUsername {
		t.Fatalf("unexpected customer: %+v", got)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	validator.EXPECT().ValidateRegistration(gomock.Any(), custEmail, custUsername, custPassword).Return(nil)
	repo.EXPECT().ExistsByEmail(gomock.Any(), custEmail).Return(true, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	_, err := svc.Register(context.Background(), custEmail, custUsername, custPassword)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestRegister_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	validator.EXPECT().ValidateRegistration(gomock.Any(), "bad", custUsername, custPassword).
		Return(validate.ErrInvalidRequest)
	repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	_, err := svc.Register(context.Background(), "bad", custUsername, custPassword)
	if !errors.Is(err, validate.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
}

func TestAuthenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	stored := &domain.Customer{ID: 7, Email: custEmail, Username: custUsername, Password: custPassword}

	gomock.InOrder(
		repo.EXPECT().GetByEmail(gomock.Any(), custEmail).Return(stored, nil),
		tokens.EXPECT().Issue(int64(7), custUsername).Return("token-7", nil),
	)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	token, err := svc.Authenticate(context.Background(), custEmail, custPassword)
	if err != nil || token != "token-7" {
		t.Fatalf("want token-7, got token=%q err=%v", token, err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	repo.EXPECT().GetByEmail(gomock.Any(), custEmail).Return(nil, nil)
	tokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	_, err := svc.Authenticate(context.Background(), custEmail, custPassword)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	stored := &domain.Customer{ID: 7, Email: custEmail, Username: custUsername, Password: custPassword}

	repo.EXPECT().GetByEmail(gomock.Any(), custEmail).Return(stored, nil)
	tokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	_, err := svc.Authenticate(context.Background(), custEmail, "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	_, err := svc.Profile(context.Background(), 99)
	if !errors.Is(err, domain.ErrInvalidCustomer) {
		t.Fatalf("want ErrInvalidCustomer, got %v", err)
	}
}

func TestUpdateProfile_Success_KeepsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	stored := &domain.Customer{ID: 7, Email: custEmail, Username: custUsername, Password: custPassword}

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(stored, nil),
		validator.EXPECT().ValidateUpdate(gomock.Any(), "renamed", "new-password-1").Return(nil),
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(&domain.Customer{})).
			DoAndReturn(func(_ context.Context, c *domain.Customer) error {
				if c.Email != custEmail {
					t.Fatalf("email must stay unchanged, got %q", c.Email)
				}
				return nil
			}),
	)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	got, err := svc.UpdateProfile(context.Background(), 7, custPassword, "renamed", "new-password-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "renamed" || got.Password != "new-password-1" || got.Email != custEmail {
		t.Fatalf("unexpected customer: %+v", got)
	}
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	stored := &domain.Customer{ID: 7, Email: custEmail, Username: custUsername, Password: custPassword}

	repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	_, err := svc.UpdateProfile(context.Background(), 7, "wrong", "renamed", "new-password-1")
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("want ErrPasswordMismatch, got %v", err)
	}
}

func TestUpdateProfile_CustomerGone(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, nil)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	_, err := svc.UpdateProfile(context.Background(), 7, custPassword, "renamed", "new-password-1")
	if !errors.Is(err, domain.ErrInvalidCustomer) {
		t.Fatalf("want ErrInvalidCustomer, got %v", err)
	}
}

func TestDelete_RepeatedCallIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	// Хранилище не различает удаление существующей и отсутствующей записи.
	repo.EXPECT().DeleteByID(gomock.Any(), int64(7)).Return(nil).Times(2)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error on repeat: %v", err)
	}
}

func TestDelete_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockCustomerRepository(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	validator := mocks.NewMockCustomerValidator(ctrl)

	repoErr := errors.New("connection reset")
	repo.EXPECT().DeleteByID(gomock.Any(), int64(7)).Return(repoErr)

	svc := usecase.NewCustomerService(repo, tokens, noopLogger{}, validator)

	if err := svc.Delete(context.Background(), 7); !errors.Is(err, repoErr) {
		t.Fatalf("want repo error, got %v", err)
	}
}
