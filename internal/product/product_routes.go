package product

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/menu", handler.Menu)

	products := r.Group("/products")
	{
		products.GET("", handler.Catalog)
		products.GET("/:id", handler.Get)
		products.GET("/:id/related", handler.Related)
	}
}

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.ListAll)
		products.POST("", handler.Create)
		products.PUT("/:id", handler.Update)
		products.DELETE("/:id", handler.Delete)
	}
}
