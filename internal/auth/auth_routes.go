package auth

import (
	"github.com/gin-gonic/gin"

	"go-storefront-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/profile", middleware.AuthMiddleware(), handler.Profile)
	}
}
