package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Gunvolt24/shop_backend/internal/domain"
	"github.com/Gunvolt24/shop_backend/pkg/validate"
	"github.com/gin-gonic/gin"
)

// DTO: поле userName — в стиле публичного API (как и в ответах).
type registerRequest struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type customerResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type updateRequest struct {
	UserName    string `json:"userName"`
	Password    string `json:"password"` // текущий пароль — подтверждение
	NewPassword string `json:"newPassword"`
}

type updateResponse struct {
	UserName string `json:"userName"`
}

// POST /customers — регистрация: 201 + Location, 400 при занятом email
// или невалидных данных.
func (h *Handler) registerCustomer(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	customer, err := h.customers.Register(ctx, req.Email, req.UserName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already in use"})
		case errors.Is(err, validate.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf(ctx, "Register failed email=%s err=%v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/customers/%d", customer.ID))
	c.JSON(http.StatusCreated, customerResponse{
		ID:       customer.ID,
		Email:    customer.Email,
		UserName: customer.Username,
	})
}

// POST /auth/login — выпуск токена; любые неверные данные → 401.
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	token, err := h.customers.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.log.Errorf(ctx, "Authenticate failed email=%s err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}

// GET /customers — профиль текущего покупателя.
func (h *Handler) getMe(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	customer, err := h.customers.Profile(ctx, customerIDFrom(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCustomer) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		h.log.Errorf(ctx, "Profile failed id=%d err=%v", customerIDFrom(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, customerResponse{
		ID:       customer.ID,
		Email:    customer.Email,
		UserName: customer.Username,
	})
}

// PATCH /customers — смена имени/пароля; неверный текущий пароль → 401.
func (h *Handler) updateMe(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := customerIDFrom(c)
	updated, err := h.customers.UpdateProfile(ctx, id, req.Password, req.UserName, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "password mismatch"})
		case errors.Is(err, domain.ErrInvalidCustomer):
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		case errors.Is(err, validate.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf(ctx, "UpdateProfile failed id=%d err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, updateResponse{UserName: updated.Username})
}

// DELETE /customers — удаление аккаунта; всегда 204 при успехе.
func (h *Handler) deleteMe(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := customerIDFrom(c)
	if err := h.customers.Delete(ctx, id); err != nil {
		h.log.Errorf(ctx, "Delete failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
