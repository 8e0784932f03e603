package catalog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	catalog := r.Group("/catalog")
	{
		catalog.POST("/load", handler.Load)
		catalog.GET("/products", handler.Products)
		catalog.GET("/products/:id", handler.ProductByID)
		catalog.GET("/categories", handler.Categories)
		catalog.PUT("/filters", handler.SetFilter)
		catalog.DELETE("/filters", handler.ClearFilters)
	}
}
