package order_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/nicoxroll/frikioteca/internal/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE REPOSITORY ====================

type fakeOrderRepo struct {
	createFunc       func(ctx context.Context, arg order.CreateParams) (order.Order, error)
	createItemsFunc  func(ctx context.Context, orderID uuid.UUID, items []order.ItemParams) error
	getByIDFunc      func(ctx context.Context, id uuid.UUID) (order.ListRow, error)
	getItemsFunc     func(ctx context.Context, orderID uuid.UUID) ([]order.OrderItem, error)
	listFunc         func(ctx context.Context, status string) ([]order.ListRow, error)
	updateStatusFunc func(ctx context.Context, id uuid.UUID, status string) error
	statsFunc        func(ctx context.Context) (order.DashboardStats, error)
}

func (f *fakeOrderRepo) Create(ctx context.Context, arg order.CreateParams) (order.Order, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, arg)
	}
	return order.Order{ID: uuid.NewString(), Total: arg.Total, Status: arg.Status, CreatedAt: time.Now()}, nil
}
func (f *fakeOrderRepo) CreateItems(ctx context.Context, orderID uuid.UUID, items []order.ItemParams) error {
	if f.createItemsFunc != nil {
		return f.createItemsFunc(ctx, orderID, items)
	}
	return nil
}
func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (order.ListRow, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return order.ListRow{}, sql.ErrNoRows
}
func (f *fakeOrderRepo) GetItems(ctx context.Context, orderID uuid.UUID) ([]order.OrderItem, error) {
	if f.getItemsFunc != nil {
		return f.getItemsFunc(ctx, orderID)
	}
	return nil, nil
}
func (f *fakeOrderRepo) List(ctx context.Context, status string) ([]order.ListRow, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, status)
	}
	return nil, nil
}
func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, id, status)
	}
	return nil
}
func (f *fakeOrderRepo) Stats(ctx context.Context) (order.DashboardStats, error) {
	if f.statsFunc != nil {
		return f.statsFunc(ctx)
	}
	return order.DashboardStats{}, nil
}

func TestValidStatus(t *testing.T) {
	assert.True(t, order.ValidStatus("pendiente"))
	assert.True(t, order.ValidStatus("en_progreso"))
	assert.True(t, order.ValidStatus("completado"))
	assert.True(t, order.ValidStatus("cancelado"))
	assert.False(t, order.ValidStatus("enviado"))
	assert.False(t, order.ValidStatus(""))
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success_with_items", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeOrderRepo{
			getByIDFunc: func(ctx context.Context, got uuid.UUID) (order.ListRow, error) {
				assert.Equal(t, id, got)
				lr := order.ListRow{CustomerName: "Nico"}
				lr.ID = id.String()
				lr.Status = order.StatusPendiente
				return lr, nil
			},
			getItemsFunc: func(ctx context.Context, orderID uuid.UUID) ([]order.OrderItem, error) {
				return []order.OrderItem{{Name: "Cappuccino", Quantity: 2, Price: 3500}}, nil
			},
		}
		svc := order.NewService(repo, nil)

		res, err := svc.Get(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "Nico", res.CustomerName)
		assert.Len(t, res.Items, 1)
	})

	t.Run("invalid_id", func(t *testing.T) {
		svc := order.NewService(&fakeOrderRepo{}, nil)

		_, err := svc.Get(ctx, "not-a-uuid")
		assert.Equal(t, order.ErrInvalidOrderID, err)
	})

	t.Run("not_found", func(t *testing.T) {
		svc := order.NewService(&fakeOrderRepo{}, nil)

		_, err := svc.Get(ctx, uuid.NewString())
		assert.Equal(t, order.ErrOrderNotFound, err)
	})
}

func TestOrderService_ListAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("passes_status_filter", func(t *testing.T) {
		repo := &fakeOrderRepo{
			listFunc: func(ctx context.Context, status string) ([]order.ListRow, error) {
				assert.Equal(t, order.StatusPendiente, status)
				return []order.ListRow{{CustomerName: "Nico"}}, nil
			},
		}
		svc := order.NewService(repo, nil)

		res, err := svc.ListAdmin(ctx, "pendiente")
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("empty_status_lists_all", func(t *testing.T) {
		repo := &fakeOrderRepo{
			listFunc: func(ctx context.Context, status string) ([]order.ListRow, error) {
				assert.Empty(t, status)
				return nil, nil
			},
		}
		svc := order.NewService(repo, nil)

		_, err := svc.ListAdmin(ctx, "")
		assert.NoError(t, err)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc := order.NewService(&fakeOrderRepo{}, nil)

		_, err := svc.ListAdmin(ctx, "enviado")
		assert.Equal(t, order.ErrInvalidStatus, err)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeOrderRepo{
			updateStatusFunc: func(ctx context.Context, got uuid.UUID, status string) error {
				assert.Equal(t, id, got)
				assert.Equal(t, order.StatusCompletado, status)
				return nil
			},
			getByIDFunc: func(ctx context.Context, got uuid.UUID) (order.ListRow, error) {
				lr := order.ListRow{}
				lr.ID = got.String()
				lr.Status = order.StatusCompletado
				return lr, nil
			},
		}
		svc := order.NewService(repo, nil)

		res, err := svc.UpdateStatus(ctx, id.String(), order.UpdateStatusRequest{Status: "completado"})
		assert.NoError(t, err)
		assert.Equal(t, order.StatusCompletado, res.Status)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc := order.NewService(&fakeOrderRepo{}, nil)

		_, err := svc.UpdateStatus(ctx, uuid.NewString(), order.UpdateStatusRequest{Status: "enviado"})
		assert.Equal(t, order.ErrInvalidStatus, err)
	})

	t.Run("missing_status_rejected", func(t *testing.T) {
		svc := order.NewService(&fakeOrderRepo{}, nil)

		_, err := svc.UpdateStatus(ctx, uuid.NewString(), order.UpdateStatusRequest{})
		assert.Equal(t, order.ErrInvalidStatus, err)
	})

	t.Run("order_not_found", func(t *testing.T) {
		repo := &fakeOrderRepo{
			updateStatusFunc: func(ctx context.Context, id uuid.UUID, status string) error {
				return sql.ErrNoRows
			},
		}
		svc := order.NewService(repo, nil)

		_, err := svc.UpdateStatus(ctx, uuid.NewString(), order.UpdateStatusRequest{Status: "cancelado"})
		assert.Equal(t, order.ErrOrderNotFound, err)
	})
}

func TestOrderService_CreateManual(t *testing.T) {
	ctx := context.Background()

	t.Run("computes_total_from_lines", func(t *testing.T) {
		newID := uuid.New()
		var gotCreate order.CreateParams
		var gotItems []order.ItemParams
		var gotOrderID uuid.UUID
		repo := &fakeOrderRepo{
			createFunc: func(ctx context.Context, arg order.CreateParams) (order.Order, error) {
				gotCreate = arg
				return order.Order{ID: newID.String(), Total: arg.Total, Status: arg.Status}, nil
			},
			createItemsFunc: func(ctx context.Context, orderID uuid.UUID, items []order.ItemParams) error {
				gotOrderID = orderID
				gotItems = items
				return nil
			},
		}
		svc := order.NewService(repo, nil)

		created, err := svc.CreateManual(ctx, order.CreateManualRequest{
			CustomerID:    uuid.NewString(),
			PaymentMethod: "efectivo",
			Items: []order.ManualItemInput{
				{ProductID: uuid.NewString(), Quantity: 2, Price: 3500},
				{ProductID: uuid.NewString(), Quantity: 1, Price: 9800},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, 3500.0*2+9800.0, created.Total)
		assert.Equal(t, order.StatusPendiente, gotCreate.Status)
		// Las líneas cuelgan del pedido recién creado.
		assert.Equal(t, newID, gotOrderID)
		assert.Len(t, gotItems, 2)
	})

	t.Run("error_no_items", func(t *testing.T) {
		svc := order.NewService(&fakeOrderRepo{}, nil)

		_, err := svc.CreateManual(ctx, order.CreateManualRequest{
			CustomerID:    uuid.NewString(),
			PaymentMethod: "efectivo",
		})
		assert.Equal(t, order.ErrInvalidOrderInput, err)
	})

	t.Run("line_items_failure_propagates", func(t *testing.T) {
		repo := &fakeOrderRepo{
			createItemsFunc: func(ctx context.Context, orderID uuid.UUID, items []order.ItemParams) error {
				return assert.AnError
			},
		}
		svc := order.NewService(repo, nil)

		_, err := svc.CreateManual(ctx, order.CreateManualRequest{
			CustomerID:    uuid.NewString(),
			PaymentMethod: "efectivo",
			Items:         []order.ManualItemInput{{ProductID: uuid.NewString(), Quantity: 1, Price: 100}},
		})
		assert.Error(t, err)
	})
}

func TestOrderService_Dashboard(t *testing.T) {
	ctx := context.Background()

	repo := &fakeOrderRepo{
		statsFunc: func(ctx context.Context) (order.DashboardStats, error) {
			return order.DashboardStats{TotalOrders: 12, PendingOrders: 3, Revenue: 45200}, nil
		},
	}
	svc := order.NewService(repo, nil)

	stats, err := svc.Dashboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, 45200.0, stats.Revenue)
}
