package handlers

import (
	"net/http"
	"time"

	bookingRepo "ybhotels/database/repository/booking"
	complaintRepo "ybhotels/database/repository/complaint"
	orderRepo "ybhotels/database/repository/order"
	"ybhotels/services/booking"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the front-desk management endpoints.
type AdminHandler struct {
	Ops        *booking.Service
	Bookings   bookingRepo.BookingRepository
	Complaints complaintRepo.ComplaintRepository
	Orders     orderRepo.OrderRepository
}

func NewAdminHandler(ops *booking.Service, bookings bookingRepo.BookingRepository,
	complaints complaintRepo.ComplaintRepository, orders orderRepo.OrderRepository) *AdminHandler {
	return &AdminHandler{Ops: ops, Bookings: bookings, Complaints: complaints, Orders: orders}
}

// ListBookings handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ConfirmBooking handles POST /api/admin/bookings/:id/confirm.
func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	if err := h.Ops.ConfirmBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking confirmed"})
}

// CancelBooking handles POST /api/admin/bookings/:id/cancel. Unlike the
// guest endpoint, status restrictions beyond terminal states don't apply.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	msg, err := h.Ops.CancelBooking(c.Request.Context(), c.Param("id"), authedUserID(c), true)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// ListComplaints handles GET /api/admin/complaints.
func (h *AdminHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.Complaints.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list complaints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// RespondComplaint handles POST /api/admin/complaints/:id/respond.
func (h *AdminHandler) RespondComplaint(c *gin.Context) {
	var input struct {
		Response string `json:"response" binding:"required"`
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Status == "" {
		input.Status = "resolved"
	}
	fields := map[string]interface{}{
		"response":  input.Response,
		"status":    input.Status,
		"updatedAt": time.Now().UTC(),
	}
	if err := h.Complaints.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update complaint"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "complaint updated"})
}

// ListOrders handles GET /api/admin/orders.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
