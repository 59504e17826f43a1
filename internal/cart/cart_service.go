package cart

import (
	"context"

	carterrors "github.com/nicoxroll/frikioteca/internal/cart/errors"

	"github.com/go-playground/validator/v10"
)

type Service interface {
	Detail(ctx context.Context, sessionID string) (DetailResponse, error)
	Items(ctx context.Context, sessionID string) ([]Item, error)
	ItemQuantity(ctx context.Context, sessionID, productID string) (int, error)

	AddItem(ctx context.Context, sessionID string, req AddItemRequest) error
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error
	RemoveItem(ctx context.Context, sessionID, productID string) error
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store    Store
	validate *validator.Validate
}

func NewService(store Store) Service {
	return &service{
		store:    store,
		validate: validator.New(),
	}
}

// TotalItems suma las cantidades. Siempre se recalcula sobre la lista,
// nunca se cachea.
func TotalItems(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// TotalPrice suma precio * cantidad por línea.
func TotalPrice(items []Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *service) Detail(ctx context.Context, sessionID string) (DetailResponse, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return DetailResponse{}, err
	}

	return DetailResponse{
		Items:      items,
		TotalItems: TotalItems(items),
		TotalPrice: TotalPrice(items),
	}, nil
}

func (s *service) Items(ctx context.Context, sessionID string) ([]Item, error) {
	return s.store.Load(ctx, sessionID)
}

func (s *service) ItemQuantity(ctx context.Context, sessionID, productID string) (int, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	for _, it := range items {
		if it.ID == productID {
			return it.Quantity, nil
		}
	}
	return 0, nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return carterrors.ErrInvalidItem
	}

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	// Si el producto ya está en el carrito se suma la cantidad,
	// nunca se duplica la línea.
	merged := false
	for i := range items {
		if items[i].ID == req.ProductID {
			items[i].Quantity += req.Quantity
			merged = true
			break
		}
	}

	if !merged {
		items = append(items, Item{
			ID:       req.ProductID,
			Name:     req.Name,
			Price:    req.Price,
			Quantity: req.Quantity,
			Image:    req.Image,
		})
	}

	return s.store.Save(ctx, sessionID, items)
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	// Cantidad cero o negativa equivale a quitar la línea.
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, productID)
	}

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}

	if !changed {
		// El producto no está en el carrito, no hay nada que actualizar.
		return nil
	}

	return s.store.Save(ctx, sessionID, items)
}

func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) error {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}

	if len(kept) == len(items) {
		return nil
	}

	return s.store.Save(ctx, sessionID, kept)
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Save(ctx, sessionID, []Item{})
}
