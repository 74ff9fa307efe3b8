package middleware

import (
	"net/http"
	"strings"

	userRepo "ybhotels/database/repository/user"
	"ybhotels/utils"

	"github.com/gin-gonic/gin"
)

// bearerToken pulls the token out of the Authorization header, empty if the
// header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthUserMiddleware requires a valid guest token and sets userID and
// email on the request context.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, email, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		usr, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}

		c.Set("userID", usr.ID)
		c.Set("email", email)
		c.Next()
	}
}

// OptionalAuthMiddleware sets identity when a valid token is present but
// lets anonymous requests through. Used by the reception endpoint, where an
// unidentified caller still gets FAQ-level answers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			if userID, email, err := utils.ExtractIdentityFromToken(tokenString); err == nil && userID != "" {
				c.Set("userID", userID)
				c.Set("email", email)
			}
		}
		c.Next()
	}
}
