package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/shop_backend/internal/ports"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Проверка, что JWT удовлетворяет порту TokenIssuer.
var _ ports.TokenIssuer = (*JWT)(nil)

// ErrInvalidToken — токен не прошёл проверку (подпись, срок, формат claims).
var ErrInvalidToken = errors.New("invalid token")

// Claims — полезная нагрузка токена: id покупателя лежит в Subject,
// имя пользователя — отдельным полем (им пользуются заказы).
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWT — выпуск и разбор HS256-токенов. Секрет и TTL приходят из конфигурации.
type JWT struct {
	secret []byte
	ttl    time.Duration
}

// NewJWT — конструктор JWT.
func NewJWT(secret string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWT{secret: []byte(secret), ttl: ttl}
}

// Issue — выпускает токен доступа для покупателя.
func (j *JWT) Issue(customerID int64, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(customerID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Parse — проверяет токен и возвращает id и имя пользователя.
func (j *JWT) Parse(token string) (int64, string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, "", ErrInvalidToken
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return id, claims.Username, nil
}
