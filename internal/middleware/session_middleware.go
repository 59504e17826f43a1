package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "frikioteca_session"

// aprox. un año, como el storage del navegador que no expira solo
const sessionMaxAge = 60 * 60 * 24 * 365

// SessionMiddleware identifica la sesión de compra. Si no hay cookie
// se genera una nueva; el carrito cuelga de este id.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}

		c.Set("session_id", sid)
		c.Next()
	}
}
