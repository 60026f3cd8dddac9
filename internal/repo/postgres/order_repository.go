package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет порту OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация хранилища заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Add — вставляет заказ с текущим временем и возвращает сгенерированный id.
// Время ставим на стороне приложения в момент вызова; id получаем через
// RETURNING в том же запросе — отдельного "select last id" нет.
func (r *OrderRepository) Add(ctx context.Context, customerID int64) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (customer_id, order_date)
		VALUES ($1, $2)
		RETURNING id
	`, customerID, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// GetByID — заказ по id. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, order_date FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.CustomerID, &o.OrderDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &o, nil
}

// IsValid — проверка принадлежности заказа покупателю: строка должна
// совпасть по обоим полям одновременно. Заказ с чужим customer_id даёт false.
func (r *OrderRepository) IsValid(ctx context.Context, customerID, orderID int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM orders WHERE customer_id = $1 AND id = $2)
	`, customerID, orderID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists order: %w", err)
	}
	return ok, nil
}
