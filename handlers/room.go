package handlers

import (
	"net/http"

	roomRepo "ybhotels/database/repository/room"
	"ybhotels/models"
	"ybhotels/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves the room catalogue and availability queries; room
// management endpoints are admin-only via routing.
type RoomHandler struct {
	Rooms roomRepo.RoomRepository
	Ops   *booking.Service
}

func NewRoomHandler(rooms roomRepo.RoomRepository, ops *booking.Service) *RoomHandler {
	return &RoomHandler{Rooms: rooms, Ops: ops}
}

// List handles GET /api/rooms.
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.Rooms.GetAll(c.Request.Context())
	if err != nil {
		zap.L().Error("room list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// Get handles GET /api/rooms/:id.
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.Rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// Availability handles GET /api/rooms/availability with optional roomType,
// checkInDate, and checkOutDate query parameters.
func (h *RoomHandler) Availability(c *gin.Context) {
	rooms, err := h.Ops.GetRoomAvailability(c.Request.Context(),
		c.Query("roomType"), c.Query("checkInDate"), c.Query("checkOutDate"))
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// Create handles POST /api/admin/rooms.
func (h *RoomHandler) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	id, err := h.Rooms.Create(c.Request.Context(), room)
	if err != nil {
		zap.L().Error("room create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}
	room.ID = id
	c.JSON(http.StatusCreated, room)
}

// Update handles PATCH /api/admin/rooms/:id.
func (h *RoomHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	delete(fields, "id")
	if err := h.Rooms.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		zap.L().Error("room update failed", zap.String("roomId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room updated"})
}

// Delete handles DELETE /api/admin/rooms/:id.
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.Rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}
