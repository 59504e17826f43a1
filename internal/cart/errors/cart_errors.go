package carterrors

import (
	"net/http"

	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
)

var (
	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Producto inválido para el carrito",
		http.StatusBadRequest,
	)

	ErrEmptyCart = apperror.New(
		"CART_EMPTY",
		"El carrito está vacío",
		http.StatusConflict,
	)

	ErrStoreUnavailable = apperror.New(
		apperror.CodeInternalError,
		"No se pudo guardar el carrito",
		http.StatusInternalServerError,
	)
)
