package handlers

import (
	"net/http"

	"ybhotels/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP. It is a thin
// adapter: all rules live in the booking service.
type BookingHandler struct {
	Ops *booking.Service
}

func NewBookingHandler(ops *booking.Service) *BookingHandler {
	return &BookingHandler{Ops: ops}
}

// respondOpsError maps a typed service error onto an HTTP status.
func respondOpsError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if e, ok := err.(*booking.Error); ok {
		switch e.Code {
		case booking.CodeValidation:
			status = http.StatusBadRequest
		case booking.CodeConflict, booking.CodeState:
			status = http.StatusConflict
		case booking.CodePermission:
			status = http.StatusForbidden
		}
	}
	c.JSON(status, gin.H{"error": booking.UserMessage(err)})
}

func authedUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var input struct {
		RoomID          string `json:"roomId" binding:"required"`
		CheckInDate     string `json:"checkInDate" binding:"required"`
		CheckOutDate    string `json:"checkOutDate" binding:"required"`
		GuestCount      int    `json:"guestCount"`
		GuestName       string `json:"guestName"`
		GuestEmail      string `json:"guestEmail"`
		SpecialRequests string `json:"specialRequests"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Ops.BookRoom(c.Request.Context(), booking.BookRequest{
		RoomID:          input.RoomID,
		UserID:          authedUserID(c),
		GuestName:       input.GuestName,
		GuestEmail:      input.GuestEmail,
		CheckInDate:     input.CheckInDate,
		CheckOutDate:    input.CheckOutDate,
		GuestCount:      input.GuestCount,
		SpecialRequests: input.SpecialRequests,
	})
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// List handles GET /api/bookings (the caller's own bookings).
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.Ops.GetUserBookings(c.Request.Context(), authedUserID(c))
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Ops.GetBookingDetails(c.Request.Context(), c.Param("id"), authedUserID(c), false)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	msg, err := h.Ops.CancelBooking(c.Request.Context(), c.Param("id"), authedUserID(c), false)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// CheckIn handles POST /api/bookings/:id/check-in.
func (h *BookingHandler) CheckIn(c *gin.Context) {
	b, err := h.Ops.CheckIn(c.Request.Context(), c.Param("id"), authedUserID(c), false)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckOut handles POST /api/bookings/:id/check-out.
func (h *BookingHandler) CheckOut(c *gin.Context) {
	b, err := h.Ops.CheckOut(c.Request.Context(), c.Param("id"), authedUserID(c), false)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Upgrade handles POST /api/bookings/:id/upgrade.
func (h *BookingHandler) Upgrade(c *gin.Context) {
	var input struct {
		NewRoomID string `json:"newRoomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.Ops.UpgradeRoom(c.Request.Context(), c.Param("id"), input.NewRoomID, authedUserID(c), false)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
