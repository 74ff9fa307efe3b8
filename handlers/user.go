package handlers

import (
	"net/http"
	"time"

	userRepo "ybhotels/database/repository/user"
	"ybhotels/models"
	"ybhotels/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tokenLifetime = 24 * time.Hour

// UserHandler covers guest registration and token issuance. Credential
// verification is delegated to the identity provider in front of this API;
// tokens issued here carry identity only.
type UserHandler struct {
	Users userRepo.UserRepository
}

func NewUserHandler(users userRepo.UserRepository) *UserHandler {
	return &UserHandler{Users: users}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if existing, err := h.Users.GetByEmail(c.Request.Context(), input.Email); err == nil && existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "an account with this email already exists"})
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Role:        "user",
	}
	id, err := h.Users.Create(c.Request.Context(), user)
	if err != nil {
		zap.L().Error("user create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}
	user.ID = id

	token, err := utils.GenerateToken(id, input.Email, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), input.Email)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no account found for this email"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.Users.GetByID(c.Request.Context(), authedUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
