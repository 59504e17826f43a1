package customer

import (
	"net/http"

	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cliente no encontrado",
		http.StatusNotFound,
	)

	ErrInvalidCustomerID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de cliente inválido",
		http.StatusBadRequest,
	)
)
