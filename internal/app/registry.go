package app

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-storefront-api/internal/auth"
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/messaging/kafka/producer"
	"go-storefront-api/internal/order"
	"go-storefront-api/internal/session"
)

const (
	sessionIdleTTL  = 30 * time.Minute
	janitorInterval = 5 * time.Minute
)

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client, kafkaWriter *kafka.Writer, logger *zap.Logger) {
	// --- External catalog + per-session stores ---
	catalogBaseURL := os.Getenv("CATALOG_BASE_URL")
	if catalogBaseURL == "" {
		catalogBaseURL = "https://fakestoreapi.com"
	}
	catalogClient := catalog.NewClient(catalogBaseURL, redisClient, logger)

	sessions := session.NewManager(catalogClient, sessionIdleTTL)
	sessions.StartJanitor(context.Background(), janitorInterval)

	cartResolver := cart.StoreResolver(func(sessionID string) *cart.Store {
		return sessions.Get(sessionID).Cart
	})
	catalogResolver := catalog.StoreResolver(func(sessionID string) *catalog.Store {
		return sessions.Get(sessionID).Catalog
	})

	// --- Repositories ---
	authRepo := auth.NewRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	orderService := order.NewService(order.Deps{
		Publisher: producer.NewOrderEventPublisher(kafkaWriter),
		Carts:     cartResolver,
		Logger:    logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	cartHandler := cart.NewHandler(cartResolver, logger)
	catalogHandler := catalog.NewHandler(catalogResolver, catalogClient, logger)
	orderHandler := order.NewHandler(orderService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler)
	}
}
