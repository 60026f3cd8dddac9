package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/internal/ports"
	"github.com/Gunvolt24/shop_backend/pkg/metrics"
)

// Проверка, что OrderService удовлетворяет порту OrderFlow.
var _ ports.OrderFlow = (*OrderService)(nil)

// OrderService — оформление и чтение заказов.
// Покупатель приходит из токена по имени пользователя; id разрешается
// через IDByUsername — отсутствие покупателя здесь жёсткая ошибка.
type OrderService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	publisher ports.OrderEventPublisher
	log       ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
	publisher ports.OrderEventPublisher,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		publisher: publisher,
		log:       log,
	}
}

// Place — оформить заказ для покупателя с данным именем пользователя.
// Шаги:
//  1. разрешаем id (domain.ErrInvalidCustomer, если покупателя нет);
//  2. вставка заказа (id приходит из RETURNING);
//  3. публикация события "заказ создан" — ошибка публикации только логируется,
//     заказ уже создан и откатывать его из-за брокера нельзя.
func (s *OrderService) Place(ctx context.Context, username string) (int64, error) {
	customerID, err := s.customers.IDByUsername(ctx, username)
	if err != nil {
		s.log.Warnf(ctx, "resolve customer failed username=%s err=%v", username, err)
		return 0, err
	}

	orderID, err := s.orders.Add(ctx, customerID)
	if err != nil {
		s.log.Errorf(ctx, "repo.Add failed customer_id=%d err=%v", customerID, err)
		return 0, fmt.Errorf("add order: %w", err)
	}
	metrics.OrdersCreatedTotal.Inc()

	event := domain.OrderCreatedEvent{
		OrderID:    orderID,
		CustomerID: customerID,
		CreatedAt:  time.Now().UTC(),
	}
	if pubErr := s.publisher.PublishOrderCreated(ctx, event); pubErr != nil {
		s.log.Warnf(ctx, "publish order event failed order_id=%d err=%v", orderID, pubErr)
	}

	s.log.Infof(ctx, "order placed id=%d customer_id=%d", orderID, customerID)
	return orderID, nil
}

// Get — заказ по id с проверкой принадлежности: чужой или несуществующий
// заказ неразличимы и дают domain.ErrOrderNotFound.
func (s *OrderService) Get(ctx context.Context, username string, orderID int64) (*domain.Order, error) {
	customerID, err := s.customers.IDByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ok, err := s.orders.IsValid(ctx, customerID, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.IsValid failed customer_id=%d order_id=%d err=%v", customerID, orderID, err)
		return nil, err
	}
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed order_id=%d err=%v", orderID, err)
		return nil, err
	}
	if order == nil {
		// заказ удалён между IsValid и GetByID — для вызывающего это not found
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
