package checkout

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

func (h *Handler) State(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	res, err := h.service.State(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Next(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	var req NextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	res, err := h.service.Next(ctx, sessionID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Back(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	res, err := h.service.Back(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) Submit(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	res, err := h.service.Submit(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "¡Pedido realizado con éxito!", res)
}

// Options expone sedes y métodos de pago para que el cliente arme los
// pasos 3 y 4.
func (h *Handler) Options(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, "", gin.H{
		"locations":      Locations,
		"paymentMethods": PaymentMethods,
	})
}
