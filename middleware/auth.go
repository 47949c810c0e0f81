package middleware

import (
	"strings"

	"gocamp/response"
	"gocamp/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware trích xuất userID từ bearer token và gán vào context.
// Cơ chế session/refresh nằm ngoài scope; ở đây chỉ cần danh tính người gọi.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
