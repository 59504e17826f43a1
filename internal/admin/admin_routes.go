package admin

import (
	"github.com/nicoxroll/frikioteca/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registra el login público y devuelve el grupo
// protegido donde cada feature cuelga sus rutas de admin.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) *gin.RouterGroup {
	adminGroup := r.Group("/admin")

	adminGroup.POST("/login", handler.Login)
	adminGroup.POST("/logout", handler.Logout)

	protected := adminGroup.Group("")
	protected.Use(middleware.AdminMiddleware())
	protected.GET("/session", handler.Session)

	return protected
}
