package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware(originURL string) gin.HandlerFunc {
	allowedOrigins := []string{
		"http://localhost:5173",
		"http://localhost:8080",
	}

	if originURL != "" {
		allowedOrigins = append(allowedOrigins, originURL)
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", SessionHeader},
		ExposeHeaders:    []string{"Content-Length", SessionHeader},
		AllowCredentials: true,
	})
}
