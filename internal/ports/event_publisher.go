package ports

import (
	"context"

	"github.com/Gunvolt24/shop_backend/internal/domain"
)

// OrderEventPublisher — публикация событий о заказах в брокер.
// Ошибка публикации не должна ронять бизнес-операцию: вызывающий логирует её и идёт дальше.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error
	Close() error
}
