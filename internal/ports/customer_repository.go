package ports

import (
	"context"

	"github.com/Gunvolt24/shop_backend/internal/domain"
)

// CustomerRepository — хранилище покупателей.
// Контракт отсутствия записей двухуровневый:
//   - GetByID/GetByEmail возвращают (nil, nil), отсутствие — не ошибка;
//   - IDByUsername возвращает domain.ErrInvalidCustomer — в сценариях
//     аутентификации отсутствие покупателя является ошибкой.
type CustomerRepository interface {
	// Save — вставка новой записи (все поля, кроме id); возвращает сгенерированный id.
	// Уникальность email здесь не проверяется — это обязанность вызывающего (ExistsByEmail).
	Save(ctx context.Context, customer *domain.Customer) (int64, error)

	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// IDByUsername — поиск id по имени пользователя без учёта регистра.
	IDByUsername(ctx context.Context, username string) (int64, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update — обновляет только username и password; email не трогает.
	Update(ctx context.Context, customer *domain.Customer) error

	// DeleteByID — безусловное удаление; отсутствующая запись — no-op.
	DeleteByID(ctx context.Context, id int64) error
}
