package checkout

import (
	"net/http"

	"github.com/nicoxroll/frikioteca/internal/pkg/apperror"
)

var (
	ErrEmptyCart = apperror.New(
		"CART_EMPTY",
		"Agrega productos antes de continuar",
		http.StatusConflict,
	)

	ErrIncompleteCustomer = apperror.New(
		apperror.CodeInvalidInput,
		"Por favor completa los campos obligatorios",
		http.StatusBadRequest,
	)

	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Por favor ingresa un email válido",
		http.StatusBadRequest,
	)

	ErrNoLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Selecciona un lugar de entrega",
		http.StatusBadRequest,
	)

	ErrAtLastStep = apperror.New(
		apperror.CodeConflict,
		"Ya estás en el último paso",
		http.StatusConflict,
	)

	ErrNotAtPaymentStep = apperror.New(
		apperror.CodeConflict,
		"Completá los pasos anteriores antes de confirmar",
		http.StatusConflict,
	)

	ErrInvalidPaymentMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Selecciona un método de pago",
		http.StatusBadRequest,
	)

	ErrSubmitFailed = apperror.New(
		apperror.CodeInternalError,
		"Error al procesar tu pedido. Intenta nuevamente.",
		http.StatusInternalServerError,
	)
)
