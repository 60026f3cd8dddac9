package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/shop_backend/internal/ports"
)

// Проверка, что CustomerValidator удовлетворяет порту CustomerValidator.
var _ ports.CustomerValidator = (*CustomerValidator)(nil)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации входных данных.
var ErrInvalidRequest = errors.New("invalid request")

// Границы полей.
const (
	minPasswordLen = 8
	maxPasswordLen = 64
	maxUsernameLen = 32
)

// CustomerValidator — проверка данных регистрации и обновления профиля.
// Возвращает ErrInvalidRequest (с обёрнутой причиной) при любой проблеме.
type CustomerValidator struct{}

// NewCustomerValidator — конструктор CustomerValidator.
func NewCustomerValidator() *CustomerValidator { return &CustomerValidator{} }

// ValidateRegistration — email + имя пользователя + пароль.
func (v *CustomerValidator) ValidateRegistration(_ context.Context, email, username, password string) error {
	if err := v.validateEmail(email); err != nil {
		return err
	}
	if err := v.validateUsername(username); err != nil {
		return err
	}
	return v.validatePassword(password)
}

// ValidateUpdate — новое имя пользователя и новый пароль (email не меняется).
func (v *CustomerValidator) ValidateUpdate(_ context.Context, username, password string) error {
	if err := v.validateUsername(username); err != nil {
		return err
	}
	return v.validatePassword(password)
}

func (v *CustomerValidator) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidRequest)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidRequest)
	}
	return nil
}

func (v *CustomerValidator) validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: имя пользователя обязательно", ErrInvalidRequest)
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return fmt.Errorf("%w: имя пользователя длиннее %d символов", ErrInvalidRequest, maxUsernameLen)
	}
	return nil
}

func (v *CustomerValidator) validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLen {
		return fmt.Errorf("%w: пароль короче %d символов", ErrInvalidRequest, minPasswordLen)
	}
	if n > maxPasswordLen {
		return fmt.Errorf("%w: пароль длиннее %d символов", ErrInvalidRequest, maxPasswordLen)
	}
	return nil
}
