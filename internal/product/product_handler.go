package product

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

func (h *Handler) Catalog(ctx *gin.Context) {
	products, err := h.service.Catalog(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudieron cargar los productos", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", products)
}

func (h *Handler) Menu(ctx *gin.Context) {
	sections, err := h.service.Menu(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo cargar la carta", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", sections)
}

func (h *Handler) Get(ctx *gin.Context) {
	p, err := h.service.Get(ctx, ctx.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", p)
}

func (h *Handler) Related(ctx *gin.Context) {
	products, err := h.service.Related(ctx, ctx.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", products)
}

func (h *Handler) ListAll(ctx *gin.Context) {
	products, err := h.service.ListAll(ctx)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudieron listar los productos", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", products)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	p, err := h.service.Create(ctx, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo crear el producto", nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Producto creado", p)
}

func (h *Handler) Update(ctx *gin.Context) {
	var req UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	p, err := h.service.Update(ctx, ctx.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Producto actualizado", p)
}

func (h *Handler) Delete(ctx *gin.Context) {
	if err := h.service.Delete(ctx, ctx.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Producto eliminado", nil)
}
