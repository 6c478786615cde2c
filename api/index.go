package api

import (
	"log"
	"net/http"
	"sync"

	"fartburger/app"
	"fartburger/config"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

// Storefront sessions live in memory, so a serverless instance only keeps them
// while it stays warm.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())

		if _, err := app.New(router); err != nil {
			log.Fatalf("Failed to initialize app: %v", err)
		}
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
