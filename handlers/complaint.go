package handlers

import (
	"net/http"

	complaintRepo "ybhotels/database/repository/complaint"
	"ybhotels/services/booking"

	"github.com/gin-gonic/gin"
)

// ComplaintHandler serves guest complaints.
type ComplaintHandler struct {
	Ops        *booking.Service
	Complaints complaintRepo.ComplaintRepository
}

func NewComplaintHandler(ops *booking.Service, complaints complaintRepo.ComplaintRepository) *ComplaintHandler {
	return &ComplaintHandler{Ops: ops, Complaints: complaints}
}

// Create handles POST /api/complaints.
func (h *ComplaintHandler) Create(c *gin.Context) {
	var input struct {
		Subject     string `json:"subject"`
		Description string `json:"description" binding:"required"`
		Category    string `json:"category"`
		Priority    string `json:"priority"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	msg, complaint, err := h.Ops.SubmitComplaint(c.Request.Context(), authedUserID(c),
		input.Subject, input.Description, input.Category, input.Priority)
	if err != nil {
		respondOpsError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg, "complaint": complaint})
}

// List handles GET /api/complaints (the caller's own complaints).
func (h *ComplaintHandler) List(c *gin.Context) {
	complaints, err := h.Complaints.GetByUserID(c.Request.Context(), authedUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list complaints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}
