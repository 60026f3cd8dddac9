package domain

import "time"

// Order — заказ покупателя. CustomerID и OrderDate задаются при создании
// и не меняются; операций обновления/удаления у заказа нет.
type Order struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	OrderDate  time.Time `json:"orderDate"`
}

// OrderCreatedEvent — событие "заказ создан" для брокера сообщений.
type OrderCreatedEvent struct {
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}
