package ports

import (
	"context"

	"github.com/Gunvolt24/shop_backend/internal/domain"
)

// OrderFlow — сценарии оформления и чтения заказов (для транспорта).
type OrderFlow interface {
	Place(ctx context.Context, username string) (int64, error)
	Get(ctx context.Context, username string, orderID int64) (*domain.Order, error)
}
