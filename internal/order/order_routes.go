package order

import (
	"github.com/gin-gonic/gin"

	"go-storefront-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", handler.Checkout)
	}
}
