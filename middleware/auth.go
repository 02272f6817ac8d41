package middleware

import (
	"net/http"
	"strings"

	"fitsched/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthTrainerMiddleware validates the bearer token and sets the
// trainer id on the context. Token issuance lives with the identity
// service; this side only validates.
func JWTAuthTrainerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		trainerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || trainerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("trainerID", trainerID)
		c.Next()
	}
}
