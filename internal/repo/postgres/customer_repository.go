package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CustomerRepository удовлетворяет порту CustomerRepository.
var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository — реализация хранилища покупателей на Postgres (pgxpool).
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository — конструктор CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Save — вставляет запись и возвращает сгенерированный id одной операцией
// (INSERT ... RETURNING id). Никакой валидации здесь нет: уникальность email
// проверяет вызывающий через ExistsByEmail, нарушение constraint всплывёт
// как ошибка хранилища.
func (r *CustomerRepository) Save(ctx context.Context, customer *domain.Customer) (int64, error) {
	if customer == nil {
		return 0, errors.New("customer is nil")
	}

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO customer (email, username, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`, customer.Email, customer.Username, customer.Password).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// GetByID — покупатель по id. Если не нашли, возвращает (nil, nil).
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, username, password FROM customer WHERE id = $1
	`, id).Scan(&c.ID, &c.Email, &c.Username, &c.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer by id: %w", err)
	}
	return &c, nil
}

// GetByEmail — покупатель по точному совпадению email; (nil, nil), если нет.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, username, password FROM customer WHERE email = $1
	`, email).Scan(&c.ID, &c.Email, &c.Username, &c.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer by email: %w", err)
	}
	return &c, nil
}

// IDByUsername — id по имени пользователя без учёта регистра:
// аргумент приводится к нижнему регистру, сравнение идёт по lower(username)
// (под него есть функциональный индекс). Отсутствие строки здесь — ошибка
// domain.ErrInvalidCustomer, а не пустой результат: этим лукапом пользуются
// сценарии, где «нет такого покупателя» означает отказ (оформление заказа).
func (r *CustomerRepository) IDByUsername(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		SELECT id FROM customer WHERE lower(username) = $1
	`, strings.ToLower(username)).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrInvalidCustomer
	}
	if err != nil {
		return 0, fmt.Errorf("select customer id by username: %w", err)
	}
	return id, nil
}

// ExistsByEmail — есть ли запись с таким email.
func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM customer WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists customer by email: %w", err)
	}
	return exists, nil
}

// Update — обновляет username и password по id. Email неизменяем после
// создания и в запрос не попадает, даже если задан на входном объекте.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if customer == nil {
		return errors.New("customer is nil")
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE customer SET username = $1, password = $2 WHERE id = $3
	`, customer.Username, customer.Password, customer.ID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// DeleteByID — физическое удаление. Количество затронутых строк не проверяем:
// удаление несуществующего id — no-op, а не ошибка.
func (r *CustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM customer WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
