package domain

import "errors"

// Sentinel-ошибки доменного слоя. Транспорт переводит их в HTTP-статусы.
var (
	// ErrInvalidCustomer — покупатель не найден там, где его отсутствие
	// является ошибкой (поиск id по имени пользователя). Для остальных
	// чтений отсутствие — обычный результат (nil, nil).
	ErrInvalidCustomer = errors.New("invalid customer")

	// ErrEmailTaken — email уже занят (проверяется перед регистрацией).
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials — неверная пара email/пароль при входе.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch — текущий пароль не подошёл при обновлении профиля.
	ErrPasswordMismatch = errors.New("password mismatch")

	// ErrOrderNotFound — заказ не найден или принадлежит другому покупателю.
	ErrOrderNotFound = errors.New("order not found")
)
