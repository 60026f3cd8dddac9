package rest

import (
	"net/http"
	"strings"

	"github.com/Gunvolt24/shop_backend/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// Ключи gin-контекста, заполняемые authMiddleware.
const (
	ctxCustomerID = "customer_id"
	ctxUsername   = "username"
)

// authMiddleware — проверяет заголовок Authorization: Bearer <token>
// и кладёт id и имя пользователя из claims в контекст запроса.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		customerID, username, err := h.tokens.Parse(token)
		if err != nil {
			h.log.Warnf(c.Request.Context(), "token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxCustomerID, customerID)
		c.Set(ctxUsername, username)

		// id покупателя уходит в контекст запроса — его подхватит request-логгер
		c.Request = c.Request.WithContext(ctxmeta.WithCustomerID(c.Request.Context(), customerID))
		c.Next()
	}
}

// customerIDFrom — id покупателя, положенный authMiddleware.
func customerIDFrom(c *gin.Context) int64 {
	v, _ := c.Get(ctxCustomerID)
	id, _ := v.(int64)
	return id
}

// usernameFrom — имя пользователя из токена.
func usernameFrom(c *gin.Context) string {
	v, _ := c.Get(ctxUsername)
	name, _ := v.(string)
	return name
}
