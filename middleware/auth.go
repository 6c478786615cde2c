package middleware

import (
	"net/http"
	"strings"

	"fartburger/models"
	"fartburger/services"

	"github.com/gin-gonic/gin"
)

func AdminMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := auth.Verify(c.Request.Context(), tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired session",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("admin_session_id", claims.ID)
		c.Set("admin_login", claims.Login)
		c.Next()
	}
}
