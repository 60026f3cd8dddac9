package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/shop_backend/internal/ports"
	"github.com/Gunvolt24/shop_backend/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-слой: достаёт данные из запроса, дергает сценарии,
// переводит доменные ошибки в статусы.
type Handler struct {
	customers ports.CustomerAccount
	orders    ports.OrderFlow
	tokens    ports.TokenIssuer
	log       ports.Logger
	timeout   time.Duration // таймаут обработки одного запроса; 0 — без таймаута
}

// NewHandler — конструктор Handler.
func NewHandler(
	customers ports.CustomerAccount,
	orders ports.OrderFlow,
	tokens ports.TokenIssuer,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		customers: customers,
		orders:    orders,
		tokens:    tokens,
		log:       log,
		timeout:   timeout,
	}
}

// NewRouter — собирает маршруты. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/customers", h.registerCustomer)
	r.POST("/auth/login", h.login)

	authed := r.Group("", h.authMiddleware())
	authed.GET("/customers", h.getMe)
	authed.PATCH("/customers", h.updateMe)
	authed.DELETE("/customers", h.deleteMe)
	authed.POST("/orders", h.placeOrder)
	authed.GET("/orders/:id", h.getOrder)

	return r
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}
