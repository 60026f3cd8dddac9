package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/gin-gonic/gin"
)

type orderIDResponse struct {
	ID int64 `json:"id"`
}

// POST /orders — оформить заказ для покупателя из токена.
func (h *Handler) placeOrder(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	username := usernameFrom(c)
	orderID, err := h.orders.Place(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCustomer) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer"})
			return
		}
		h.log.Errorf(ctx, "Place failed username=%s err=%v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Location", fmt.Sprintf("/orders/%d", orderID))
	c.JSON(http.StatusCreated, orderIDResponse{ID: orderID})
}

// GET /orders/:id — заказ текущего покупателя; чужой или несуществующий → 404.
func (h *Handler) getOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	username := usernameFrom(c)
	order, err := h.orders.Get(ctx, username, orderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, domain.ErrInvalidCustomer):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer"})
		default:
			h.log.Errorf(ctx, "Get failed username=%s order_id=%d err=%v", username, orderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}
