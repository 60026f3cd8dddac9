//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/shop_backend/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного покупателя: email и имя уникальны в рамках прогона.
func MakeCustomer(opts ...func(*domain.Customer)) domain.Customer {
	s := UniqSuffix()

	c := domain.Customer{
		Email:    fmt.Sprintf("guest-%s@woowa.com", s),
		Username: "guest-" + s,
		Password: "password-" + s,
	}

	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithUsername — переопределяет имя пользователя.
func WithUsername(name string) func(*domain.Customer) {
	return func(c *domain.Customer) { c.Username = name }
}
