package ports

import (
	"context"

	"github.com/Gunvolt24/shop_backend/internal/domain"
)

// OrderRepository — хранилище заказов.
type OrderRepository interface {
	// Add — вставляет заказ с текущим временем и возвращает сгенерированный id
	// одной операцией (без отдельного запроса last id).
	Add(ctx context.Context, customerID int64) (int64, error)

	// GetByID — (nil, nil), если заказа нет.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// IsValid — проверка принадлежности: true только если существует строка
	// одновременно с данными customerID и orderID.
	IsValid(ctx context.Context, customerID, orderID int64) (bool, error)
}
