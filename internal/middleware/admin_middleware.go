package middleware

import (
	"fmt"
	"net/http"
	"os"

	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
	"github.com/nicoxroll/frikioteca/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const AdminCookie = "admin_token"

// AdminMiddleware protege el back-office. Valida el token que emite
// el login de admin; se chequea en cada request de /admin.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AdminCookie)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Acceso no autorizado", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Sesión de admin inválida o expirada", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Sesión de admin inválida", nil)
			c.Abort()
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Acceso denegado", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
