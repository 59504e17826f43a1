package admin

import (
	"net/http"
	"os"
	"time"

	"github.com/nicoxroll/frikioteca/internal/middleware"
	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
	"github.com/nicoxroll/frikioteca/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Credencial única del back-office, comparada en texto plano. No es
// un sistema de autenticación real y queda fuera del alcance de
// endurecerlo.
const (
	adminEmail    = "admin@manacafe.com"
	adminPassword = "admin123!"
)

const tokenTTL = 24 * time.Hour

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	if req.Email != adminEmail || req.Password != adminPassword {
		response.Error(ctx, http.StatusUnauthorized, apperror.CodeUnauthorized, "Credenciales incorrectas", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, apperror.CodeInternalError, "No se pudo iniciar sesión", nil)
		return
	}

	ctx.SetCookie(middleware.AdminCookie, signed, int(tokenTTL.Seconds()), "/", "", false, true)
	response.Success(ctx, http.StatusOK, "Sesión iniciada", nil)
}

func (h *Handler) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	response.Success(ctx, http.StatusOK, "Sesión cerrada", nil)
}

// Session confirma que el token sigue siendo válido; la usa el
// back-office en cada carga de página.
func (h *Handler) Session(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, "", gin.H{"authenticated": true})
}
