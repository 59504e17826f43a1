package checkout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"

	"github.com/nicoxroll/frikioteca/internal/cart"
	"github.com/nicoxroll/frikioteca/internal/customer"
	"github.com/nicoxroll/frikioteca/internal/order"
	"github.com/nicoxroll/frikioteca/internal/outbox"
	"github.com/nicoxroll/frikioteca/internal/shared/database/helper"

	"go.uber.org/zap"
)

type Service interface {
	State(ctx context.Context, sessionID string) (StateResponse, error)
	Next(ctx context.Context, sessionID string, req NextRequest) (StateResponse, error)
	Back(ctx context.Context, sessionID string) (StateResponse, error)
	Submit(ctx context.Context, sessionID string) (SubmitResponse, error)
	Abandon(sessionID string)
}

type Deps struct {
	Carts     cart.Service
	Customers customer.Repository
	Orders    order.Repository
	Outbox    outbox.Repository
	Logger    *zap.Logger
}

type service struct {
	carts     cart.Service
	customers customer.Repository
	orders    order.Repository
	outbox    outbox.Repository
	logger    *zap.Logger

	// El estado del wizard vive solo en memoria del proceso: los
	// datos del cliente no tocan el storage durable hasta que el
	// pedido se confirma.
	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewService(deps Deps) Service {
	if deps.Carts == nil {
		panic("cart service cannot be nil")
	}
	if deps.Customers == nil {
		panic("customer repository cannot be nil")
	}
	if deps.Orders == nil {
		panic("order repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		carts:     deps.Carts,
		customers: deps.Customers,
		orders:    deps.Orders,
		outbox:    deps.Outbox,
		logger:    deps.Logger,
		wizards:   make(map[string]*Wizard),
	}
}

// state arma la respuesta leyendo el wizard; el caller debe tener
// tomado s.mu o trabajar sobre una copia.
func (s *service) state(w *Wizard, detail cart.DetailResponse) StateResponse {
	return StateResponse{
		Step:          int(w.Step),
		StepLabel:     w.Step.Label(),
		Customer:      w.Customer,
		Location:      w.Location,
		PaymentMethod: w.PaymentMethod,
		Cart:          detail,
	}
}

// State devuelve el estado actual. Entrar al checkout con el carrito
// vacío no está permitido; el cliente redirige al catálogo.
func (s *service) State(ctx context.Context, sessionID string) (StateResponse, error) {
	detail, err := s.carts.Detail(ctx, sessionID)
	if err != nil {
		return StateResponse{}, err
	}
	if len(detail.Items) == 0 {
		return StateResponse{}, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[sessionID]
	if !ok {
		w = NewWizard()
		s.wizards[sessionID] = w
	}
	return s.state(w, detail), nil
}

func (s *service) Next(ctx context.Context, sessionID string, req NextRequest) (StateResponse, error) {
	detail, err := s.carts.Detail(ctx, sessionID)
	if err != nil {
		return StateResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[sessionID]
	if !ok {
		w = NewWizard()
		s.wizards[sessionID] = w
	}

	// Primero se aplican los datos del paso actual, después se valida
	// la transición.
	if req.Customer != nil {
		w.Customer = *req.Customer
	}
	if req.Location != "" {
		if !ValidLocation(req.Location) {
			return StateResponse{}, ErrNoLocation
		}
		w.Location = req.Location
	}
	if req.PaymentMethod != "" {
		if !ValidPaymentMethod(req.PaymentMethod) {
			return StateResponse{}, ErrInvalidPaymentMethod
		}
		w.PaymentMethod = req.PaymentMethod
	}

	if err := w.Next(len(detail.Items) == 0); err != nil {
		return StateResponse{}, err
	}

	return s.state(w, detail), nil
}

func (s *service) Back(ctx context.Context, sessionID string) (StateResponse, error) {
	detail, err := s.carts.Detail(ctx, sessionID)
	if err != nil {
		return StateResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[sessionID]
	if !ok {
		w = NewWizard()
		s.wizards[sessionID] = w
	}
	w.Back()

	return s.state(w, detail), nil
}

// Abandon descarta el wizard y sus datos de cliente.
func (s *service) Abandon(sessionID string) {
	s.mu.Lock()
	delete(s.wizards, sessionID)
	s.mu.Unlock()
}

// Submit arma el pedido con el contenido actual del carrito. Las tres
// escrituras (cliente, pedido, líneas) son llamadas independientes:
// si una falla se aborta sin rollback de las anteriores.
func (s *service) Submit(ctx context.Context, sessionID string) (SubmitResponse, error) {
	// Se copia el wizard bajo candado y se trabaja sobre la foto: otro
	// request de la misma sesión no puede pisar los datos a mitad del
	// submit.
	s.mu.Lock()
	var w Wizard
	stored, ok := s.wizards[sessionID]
	if ok {
		w = *stored
	}
	s.mu.Unlock()

	if !ok || !w.CanSubmit() {
		return SubmitResponse{}, ErrNotAtPaymentStep
	}

	items, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return SubmitResponse{}, err
	}
	if len(items) == 0 {
		return SubmitResponse{}, ErrEmptyCart
	}

	total := cart.TotalPrice(items)
	logger := s.logger.With(zap.String("session_id", sessionID))

	// 1. Buscar el cliente por email; si existe se actualizan nombre
	// y teléfono, si no se crea.
	customerID, err := s.upsertCustomer(ctx, w.Customer)
	if err != nil {
		logger.Error("checkout: customer upsert failed", zap.Error(err))
		return SubmitResponse{}, ErrSubmitFailed
	}

	// 2. Crear el pedido con el total del carrito al momento del
	// submit.
	created, err := s.orders.Create(ctx, order.CreateParams{
		CustomerID:    customerID,
		Total:         total,
		Status:        order.StatusPendiente,
		PaymentMethod: w.PaymentMethod,
		Notes:         w.Customer.Notes,
	})
	if err != nil {
		logger.Error("checkout: order insert failed", zap.Error(err))
		return SubmitResponse{}, ErrSubmitFailed
	}

	// 3. Copiar las líneas tal como están en el carrito: cantidad y
	// precio son la foto al momento de agregar, no el catálogo vivo.
	lineItems := make([]order.ItemParams, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, order.ItemParams{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	if err := s.orders.CreateItems(ctx, helper.StringToUUID(created.ID), lineItems); err != nil {
		// El pedido queda sin líneas; se registra el id huérfano
		// para conciliar a mano.
		logger.Error("checkout: line items insert failed, order left without items",
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
		return SubmitResponse{}, ErrSubmitFailed
	}

	// 4. Vaciar carrito y descartar el wizard.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		logger.Warn("checkout: cart clear failed after order creation",
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
	}
	s.Abandon(sessionID)

	s.enqueueOrderCreated(ctx, logger, created, w.Customer)

	return SubmitResponse{OrderID: created.ID, Total: created.Total}, nil
}

func (s *service) upsertCustomer(ctx context.Context, form CustomerForm) (string, error) {
	existing, err := s.customers.FindByEmail(ctx, form.Email)
	if err == nil {
		if err := s.customers.UpdateContact(ctx, helper.StringToUUID(existing.ID), form.Name, form.Phone); err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	created, err := s.customers.Create(ctx, customer.CreateParams{
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
		DNI:   form.DNI,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// enqueueOrderCreated deja el evento en el outbox para que el worker
// lo publique. Es best-effort: una falla acá no voltea el pedido.
func (s *service) enqueueOrderCreated(ctx context.Context, logger *zap.Logger, created order.Order, form CustomerForm) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(orderCreatedPayload{
		OrderID:       created.ID,
		CustomerName:  form.Name,
		CustomerEmail: form.Email,
		Total:         created.Total,
		PaymentMethod: created.PaymentMethod,
	})
	if err != nil {
		logger.Warn("checkout: could not encode order.created payload", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, outbox.CreateParams{
		AggregateType: "order",
		AggregateID:   helper.StringToUUID(created.ID),
		EventType:     "order.created",
		Payload:       payload,
	})
	if err != nil {
		logger.Warn("checkout: could not enqueue order.created event",
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
	}
}
