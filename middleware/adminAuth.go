package middleware

import (
	"net/http"

	userRepo "ybhotels/database/repository/user"
	"ybhotels/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware requires a valid token belonging to an admin user.
func JWTAuthAdminMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		userID, _, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		usr, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || usr == nil || usr.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("userID", usr.ID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
