package ports

import "context"

// CustomerValidator — проверка входных данных регистрации и обновления профиля.
type CustomerValidator interface {
	ValidateRegistration(ctx context.Context, email, username, password string) error
	ValidateUpdate(ctx context.Context, username, password string) error
}
