package customer

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes cuelga el listado de clientes del back-office.
// El grupo ya viene protegido por el middleware de admin.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("/customers")
	{
		customers.GET("", handler.List)
		customers.GET("/:id", handler.Get)
	}
}
