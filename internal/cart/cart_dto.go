package cart

// Item es una línea del carrito. Nombre, precio e imagen quedan
// desnormalizados al momento de agregar; no se refrescan del catálogo.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type AddItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Image     string  `json:"image"`
}

type UpdateQtyRequest struct {
	Quantity int `json:"quantity"`
}

type DetailResponse struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

type ItemQuantityResponse struct {
	Quantity int `json:"quantity"`
}
