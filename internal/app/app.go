package app

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-storefront-api/internal/middleware"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaWriter, err := connectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		return err
	}

	// 2. Global middleware
	router.Use(corsMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SessionMiddleware())

	// 3. Register Modules & Routes
	registerModules(router, db, redisClient, kafkaWriter, logger)

	return nil
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}

	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.SessionHeader)
	cfg.ExposeHeaders = []string{middleware.SessionHeader, middleware.RequestIDHeader}

	return cors.New(cfg)
}
