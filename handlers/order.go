package handlers

import (
	"net/http"

	orderRepo "ybhotels/database/repository/order"
	"ybhotels/services/booking"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves room-service food orders.
type OrderHandler struct {
	Ops    *booking.Service
	Orders orderRepo.OrderRepository
}

func NewOrderHandler(ops *booking.Service, orders orderRepo.OrderRepository) *OrderHandler {
	return &OrderHandler{Ops: ops, Orders: orders}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var input struct {
		Items []string `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	msg, order, err := h.Ops.OrderFood(c.Request.Context(), authedUserID(c), input.Items)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg, "order": order})
}

// List handles GET /api/orders (the caller's own orders).
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Orders.GetByUserID(c.Request.Context(), authedUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
