package cart

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

func (h *Handler) Detail(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	res, err := h.service.Detail(ctx, sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo leer el carrito", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) AddItem(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	if err := h.service.AddItem(ctx, sessionID, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo agregar el producto", nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Producto agregado al carrito", nil)
}

func (h *Handler) UpdateQuantity(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")
	productID := ctx.Param("productId")

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Datos inválidos", err.Error())
		return
	}

	if err := h.service.UpdateQuantity(ctx, sessionID, productID, req.Quantity); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo actualizar la cantidad", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	if err := h.service.RemoveItem(ctx, sessionID, ctx.Param("productId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo quitar el producto", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", nil)
}

func (h *Handler) ItemQuantity(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	qty, err := h.service.ItemQuantity(ctx, sessionID, ctx.Param("productId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo leer el carrito", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", ItemQuantityResponse{Quantity: qty})
}

func (h *Handler) Clear(ctx *gin.Context) {
	sessionID := ctx.GetString("session_id")

	if err := h.service.Clear(ctx, sessionID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "No se pudo vaciar el carrito", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Carrito vaciado", nil)
}
