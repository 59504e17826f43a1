package customer

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

func (h *Handler) List(ctx *gin.Context) {
	customers, err := h.service.List(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudieron listar los clientes", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", customers)
}

func (h *Handler) Get(ctx *gin.Context) {
	c, err := h.service.Get(ctx, ctx.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", c)
}
