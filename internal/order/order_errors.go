package order

import (
	"net/http"

	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pedido no encontrado",
		http.StatusNotFound,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de pedido inválido",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Estado de pedido inválido",
		http.StatusBadRequest,
	)

	ErrInvalidOrderInput = apperror.New(
		apperror.CodeInvalidInput,
		"Datos del pedido inválidos",
		http.StatusBadRequest,
	)
)
