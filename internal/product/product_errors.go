package product

import (
	"net/http"

	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Producto no encontrado",
		http.StatusNotFound,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de producto inválido",
		http.StatusBadRequest,
	)

	ErrInvalidProductInput = apperror.New(
		apperror.CodeInvalidInput,
		"Datos del producto inválidos",
		http.StatusBadRequest,
	)
)
