package order

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

func (h *Handler) Get(ctx *gin.Context) {
	res, err := h.service.Get(ctx, ctx.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) ListAdmin(ctx *gin.Context) {
	orders, err := h.service.ListAdmin(ctx, ctx.Query("status"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudieron listar los pedidos", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", orders)
}

func (h *Handler) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	updated, err := h.service.UpdateStatus(ctx, ctx.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Estado actualizado", updated)
}

func (h *Handler) CreateManual(ctx *gin.Context) {
	var req CreateManualRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	created, err := h.service.CreateManual(ctx, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo crear el pedido", nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Pedido creado", created)
}

func (h *Handler) Dashboard(ctx *gin.Context) {
	stats, err := h.service.Dashboard(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudieron cargar las estadísticas", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", stats)
}
