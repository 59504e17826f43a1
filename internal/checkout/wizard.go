package checkout

import "regexp"

// Step es uno de los cuatro pasos del checkout. El flujo es lineal:
// no se saltea ni se bifurca, y volver atrás siempre está permitido.
type Step int

const (
	StepCart Step = iota + 1
	StepCustomerInfo
	StepDelivery
	StepPayment
)

func (s Step) Label() string {
	switch s {
	case StepCart:
		return "Carrito"
	case StepCustomerInfo:
		return "Datos del Cliente"
	case StepDelivery:
		return "Entrega"
	case StepPayment:
		return "Método de Pago"
	}
	return ""
}

type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

var Locations = []Location{
	{ID: "sede1", Name: "Sede Principal", Address: "Av. Corrientes 1234, CABA"},
	{ID: "sede2", Name: "Sede Palermo", Address: "Thames 1450, CABA"},
	{ID: "sede3", Name: "Sede Belgrano", Address: "Av. Cabildo 1567, CABA"},
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var PaymentMethods = []PaymentMethod{
	{ID: "efectivo", Name: "Efectivo", Description: "Pago en efectivo al retirar"},
	{ID: "transferencia", Name: "Transferencia", Description: "Transferencia bancaria previa"},
}

func ValidLocation(id string) bool {
	for _, l := range Locations {
		if l.ID == id {
			return true
		}
	}
	return false
}

func ValidPaymentMethod(id string) bool {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Wizard es el estado del checkout de una sesión. Arranca en el paso
// del carrito con sede y método de pago preseleccionados.
type Wizard struct {
	Step          Step
	Customer      CustomerForm
	Location      string
	PaymentMethod string
}

func NewWizard() *Wizard {
	return &Wizard{
		Step:          StepCart,
		Location:      Locations[0].ID,
		PaymentMethod: PaymentMethods[0].ID,
	}
}

// Next valida el paso actual y avanza. cartEmpty lo aporta el caller
// porque el carrito vive en otro lado.
func (w *Wizard) Next(cartEmpty bool) error {
	switch w.Step {
	case StepCart:
		if cartEmpty {
			return ErrEmptyCart
		}
	case StepCustomerInfo:
		if err := w.validateCustomer(); err != nil {
			return err
		}
	case StepDelivery:
		// Con la sede preseleccionada este guard no falla en la
		// práctica, pero la transición lo exige igual.
		if !ValidLocation(w.Location) {
			return ErrNoLocation
		}
	case StepPayment:
		return ErrAtLastStep
	}

	w.Step++
	return nil
}

// Back retrocede un paso, sin guardas.
func (w *Wizard) Back() {
	if w.Step > StepCart {
		w.Step--
	}
}

func (w *Wizard) CanSubmit() bool {
	return w.Step == StepPayment
}

func (w *Wizard) validateCustomer() error {
	if w.Customer.Name == "" || w.Customer.Email == "" || w.Customer.Phone == "" {
		return ErrIncompleteCustomer
	}
	if !emailPattern.MatchString(w.Customer.Email) {
		return ErrInvalidEmail
	}
	return nil
}
