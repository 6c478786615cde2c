package main

import (
	"context"
	"log"
	"time"

	"fartburger/app"
	"fartburger/config"
	_ "fartburger/docs"

	"github.com/gin-gonic/gin"
)

// @title Fartburger API
// @version 1.0
// @description Storefront for a single burger restaurant: menu, item customization, cart, promo codes, mock wallet and checkout, plus the support inbox.
// @host localhost:8082
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	application, err := app.New(gin.Default())
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go application.Registry.RunSweeper(ctx, time.Minute, config.AppConfig.SessionIdleTTL)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := application.Router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
