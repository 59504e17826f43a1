package checkout

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("/checkout")
	{
		co.GET("", handler.State)
		co.GET("/options", handler.Options)
		co.POST("/next", handler.Next)
		co.POST("/back", handler.Back)
		co.POST("/submit", handler.Submit)
	}
}
