package ports

import (
	"context"

	"github.com/Gunvolt24/shop_backend/internal/domain"
)

// CustomerAccount — сценарии работы с аккаунтом покупателя (для транспорта).
type CustomerAccount interface {
	Register(ctx context.Context, email, username, password string) (*domain.Customer, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id int64, currentPassword, newUsername, newPassword string) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
