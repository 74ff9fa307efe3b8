package handlers

import (
	"errors"
	"net/http"

	"ybhotels/services/reception"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReceptionHandler exposes the conversational endpoint. Each request is one
// guest utterance; the handler blocks on the session channel until the
// resolver answers or the wait window closes.
type ReceptionHandler struct {
	Channel *reception.Channel
}

func NewReceptionHandler(channel *reception.Channel) *ReceptionHandler {
	return &ReceptionHandler{Channel: channel}
}

// Ask handles POST /api/reception/ask.
func (h *ReceptionHandler) Ask(c *gin.Context) {
	var req reception.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if userID, ok := c.Get("userID"); ok {
		req.UserID, _ = userID.(string)
	}
	if req.Email == "" {
		if email, ok := c.Get("email"); ok {
			req.Email, _ = email.(string)
		}
	}

	msg, err := h.Channel.Ask(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, reception.ErrWaitTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "I'm sorry, that took longer than expected. Please try again.",
			})
			return
		}
		zap.L().Error("reception ask failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong while handling your request. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               msg.ID,
		"sessionId":        msg.SessionID,
		"result":           msg.Result,
		"functionCall":     msg.FunctionCall,
		"functionResponse": msg.FunctionResponse,
		"error":            msg.Error,
	})
}

// History handles GET /api/reception/history/:sessionID.
func (h *ReceptionHandler) History(c *gin.Context) {
	sessionID := c.Param("sessionID")
	history, err := h.Channel.Reception.GetSessionHistory(c.Request.Context(), sessionID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "messages": history})
}
