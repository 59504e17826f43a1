package checkout

import (
	"github.com/nicoxroll/frikioteca/internal/cart"
)

// CustomerForm vive solo en memoria mientras dura el checkout; nunca
// se persiste en el storage durable.
type CustomerForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	DNI   string `json:"dni,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// NextRequest lleva los datos del paso actual antes de avanzar.
type NextRequest struct {
	Customer      *CustomerForm `json:"customer,omitempty"`
	Location      string        `json:"location,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
}

type StateResponse struct {
	Step          int                 `json:"step"`
	StepLabel     string              `json:"stepLabel"`
	Customer      CustomerForm        `json:"customer"`
	Location      string              `json:"location"`
	PaymentMethod string              `json:"paymentMethod"`
	Cart          cart.DetailResponse `json:"cart"`
}

type SubmitResponse struct {
	OrderID string  `json:"orderId"`
	Total   float64 `json:"total"`
}

type orderCreatedPayload struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
}
