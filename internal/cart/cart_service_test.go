package cart_test

import (
	"context"
	"testing"

	"github.com/nicoxroll/frikioteca/internal/cart"
	carterrors "github.com/nicoxroll/frikioteca/internal/cart/errors"

	"github.com/stretchr/testify/assert"
)

func newTestService() (cart.Service, *cart.MemoryStore) {
	store := cart.NewMemoryStore(nil)
	return cart.NewService(store), store
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success_new_line", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.AddItem(ctx, "sess-1", cart.AddItemRequest{
			ProductID: "prod-1",
			Name:      "Cappuccino",
			Price:     3500,
			Quantity:  2,
		})
		assert.NoError(t, err)

		items, err := svc.Items(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("same_product_merges_quantity", func(t *testing.T) {
		svc, _ := newTestService()

		req := cart.AddItemRequest{ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 2}
		assert.NoError(t, svc.AddItem(ctx, "sess-1", req))

		req.Quantity = 3
		assert.NoError(t, svc.AddItem(ctx, "sess-1", req))

		items, _ := svc.Items(ctx, "sess-1")
		assert.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("different_products_keep_separate_lines", func(t *testing.T) {
		svc, _ := newTestService()

		assert.NoError(t, svc.AddItem(ctx, "sess-1", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 1,
		}))
		assert.NoError(t, svc.AddItem(ctx, "sess-1", cart.AddItemRequest{
			ProductID: "prod-2", Name: "Medialunas", Price: 1200, Quantity: 3,
		}))

		items, _ := svc.Items(ctx, "sess-1")
		assert.Len(t, items, 2)
	})

	t.Run("error_invalid_quantity", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.AddItem(ctx, "sess-1", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 0,
		})
		assert.Equal(t, carterrors.ErrInvalidItem, err)
	})

	t.Run("error_missing_product_id", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.AddItem(ctx, "sess-1", cart.AddItemRequest{
			Name: "Cappuccino", Price: 3500, Quantity: 1,
		})
		assert.Equal(t, carterrors.ErrInvalidItem, err)
	})

	t.Run("sessions_are_isolated", func(t *testing.T) {
		svc, _ := newTestService()

		assert.NoError(t, svc.AddItem(ctx, "sess-a", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 1,
		}))

		items, _ := svc.Items(ctx, "sess-b")
		assert.Empty(t, items)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets_quantity_exactly", func(t *testing.T) {
		svc, _ := newTestService()
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 2,
		}))

		assert.NoError(t, svc.UpdateQuantity(ctx, "s", "prod-1", 7))

		qty, err := svc.ItemQuantity(ctx, "s", "prod-1")
		assert.NoError(t, err)
		assert.Equal(t, 7, qty)
	})

	t.Run("zero_removes_line", func(t *testing.T) {
		svc, _ := newTestService()
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 2,
		}))

		assert.NoError(t, svc.UpdateQuantity(ctx, "s", "prod-1", 0))

		items, _ := svc.Items(ctx, "s")
		assert.Empty(t, items)
	})

	t.Run("negative_removes_line", func(t *testing.T) {
		svc, _ := newTestService()
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 2,
		}))

		assert.NoError(t, svc.UpdateQuantity(ctx, "s", "prod-1", -1))

		items, _ := svc.Items(ctx, "s")
		assert.Empty(t, items)
	})

	t.Run("unknown_product_is_noop", func(t *testing.T) {
		svc, _ := newTestService()
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 2,
		}))

		assert.NoError(t, svc.UpdateQuantity(ctx, "s", "prod-99", 4))

		items, _ := svc.Items(ctx, "s")
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_only_that_line", func(t *testing.T) {
		svc, _ := newTestService()
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 1,
		}))
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-2", Name: "Medialunas", Price: 1200, Quantity: 3,
		}))

		assert.NoError(t, svc.RemoveItem(ctx, "s", "prod-1"))

		items, _ := svc.Items(ctx, "s")
		assert.Len(t, items, 1)
		assert.Equal(t, "prod-2", items[0].ID)
	})

	t.Run("absent_product_is_noop", func(t *testing.T) {
		svc, _ := newTestService()
		assert.NoError(t, svc.RemoveItem(ctx, "s", "prod-1"))
	})
}

func TestCartService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("totals_recomputed_from_lines", func(t *testing.T) {
		svc, _ := newTestService()
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 2,
		}))
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-2", Name: "Medialunas", Price: 1200, Quantity: 3,
		}))

		res, err := svc.Detail(ctx, "s")
		assert.NoError(t, err)
		assert.Equal(t, 5, res.TotalItems)
		assert.Equal(t, 3500.0*2+1200.0*3, res.TotalPrice)
	})

	t.Run("empty_cart", func(t *testing.T) {
		svc, _ := newTestService()

		res, err := svc.Detail(ctx, "s")
		assert.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.TotalItems)
		assert.Equal(t, 0.0, res.TotalPrice)
	})
}

func TestCartService_ItemQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
		ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 4,
	}))

	t.Run("present", func(t *testing.T) {
		qty, err := svc.ItemQuantity(ctx, "s", "prod-1")
		assert.NoError(t, err)
		assert.Equal(t, 4, qty)
	})

	t.Run("absent_returns_zero", func(t *testing.T) {
		qty, err := svc.ItemQuantity(ctx, "s", "prod-99")
		assert.NoError(t, err)
		assert.Equal(t, 0, qty)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
		ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 4,
	}))
	assert.NoError(t, svc.Clear(ctx, "s"))

	res, err := svc.Detail(ctx, "s")
	assert.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestCartService_CorruptSlot(t *testing.T) {
	ctx := context.Background()
	store := cart.NewMemoryStore(nil)
	svc := cart.NewService(store)

	store.SeedRaw("s", []byte("{not json"))

	t.Run("reads_as_empty_cart", func(t *testing.T) {
		items, err := svc.Items(ctx, "s")
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("next_write_replaces_slot", func(t *testing.T) {
		assert.NoError(t, svc.AddItem(ctx, "s", cart.AddItemRequest{
			ProductID: "prod-1", Name: "Cappuccino", Price: 3500, Quantity: 1,
		}))

		items, err := svc.Items(ctx, "s")
		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
