package newsletter

import (
	"net/http"

	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
	"github.com/nicoxroll/frikioteca/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Subscribe(ctx *gin.Context) {
	var req SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	if err := h.service.Subscribe(ctx, req.Email); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "¡Gracias por suscribirte!", nil)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/newsletter", handler.Subscribe)
}
