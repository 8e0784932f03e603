package cart

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/carts")
	{
		carts.GET("/detail", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Delete)

		items := carts.Group("/items/:productId")
		{
			items.POST("", handler.AddItem)
			items.POST("/decrement", handler.Decrement)
			items.DELETE("", handler.DeleteItem)
		}
	}
}
