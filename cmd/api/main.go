package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-storefront-api/internal/app"
	"go-storefront-api/internal/bootstrap"
)

func main() {
	_ = godotenv.Load()

	logger, err := bootstrap.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r, logger); err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	bootstrap.StartHTTPServer(r, bootstrap.ServerConfig{
		Port:         port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
}
