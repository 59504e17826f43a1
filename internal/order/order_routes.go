package order

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes expone la consulta pública del pedido para la
// pantalla de confirmación.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/orders/:id", handler.Get)
}

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/dashboard", handler.Dashboard)

	orders := r.Group("/orders")
	{
		orders.GET("", handler.ListAdmin)
		orders.POST("", handler.CreateManual)
		orders.PATCH("/:id/status", handler.UpdateStatus)
	}
}
