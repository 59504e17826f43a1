package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nicoxroll/frikioteca/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Vista pública de confirmación (/order-success)
	Get(ctx context.Context, orderID string) (DetailResponse, error)

	// Back-office
	ListAdmin(ctx context.Context, status string) ([]ListRow, error)
	UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (ListRow, error)
	CreateManual(ctx context.Context, req CreateManualRequest) (Order, error)
	Dashboard(ctx context.Context) (DashboardStats, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *service) Get(ctx context.Context, orderID string) (DetailResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return DetailResponse{}, ErrInvalidOrderID
	}

	row, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DetailResponse{}, ErrOrderNotFound
		}
		return DetailResponse{}, err
	}

	items, err := s.repo.GetItems(ctx, oid)
	if err != nil {
		return DetailResponse{}, err
	}

	return DetailResponse{ListRow: row, Items: items}, nil
}

func (s *service) ListAdmin(ctx context.Context, status string) ([]ListRow, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (ListRow, error) {
	if err := s.validate.Struct(req); err != nil {
		return ListRow{}, ErrInvalidStatus
	}
	if !ValidStatus(req.Status) {
		return ListRow{}, ErrInvalidStatus
	}

	oid, err := uuid.Parse(orderID)
	if err != nil {
		return ListRow{}, ErrInvalidOrderID
	}

	if err := s.repo.UpdateStatus(ctx, oid, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ListRow{}, ErrOrderNotFound
		}
		return ListRow{}, err
	}

	return s.repo.GetByID(ctx, oid)
}

// CreateManual arma un pedido desde el back-office, sin pasar por el
// carrito. Usa los mismos inserts que el checkout.
func (s *service) CreateManual(ctx context.Context, req CreateManualRequest) (Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return Order{}, ErrInvalidOrderInput
	}

	total := 0.0
	items := make([]ItemParams, 0, len(req.Items))
	for _, it := range req.Items {
		total += it.Price * float64(it.Quantity)
		items = append(items, ItemParams{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	created, err := s.repo.Create(ctx, CreateParams{
		CustomerID:    req.CustomerID,
		Total:         total,
		Status:        StatusPendiente,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return Order{}, err
	}

	if err := s.repo.CreateItems(ctx, helper.StringToUUID(created.ID), items); err != nil {
		// Igual que el checkout: no hay rollback, queda registrado
		// el pedido huérfano para conciliar a mano.
		s.logger.Error("manual order left without items",
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
		return Order{}, err
	}

	return created, nil
}

func (s *service) Dashboard(ctx context.Context) (DashboardStats, error) {
	return s.repo.Stats(ctx)
}
