package order

import "time"

// Estados que maneja el local. Un pedido nace "pendiente".
const (
	StatusPendiente  = "pendiente"
	StatusEnProgreso = "en_progreso"
	StatusCompletado = "completado"
	StatusCancelado  = "cancelado"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPendiente, StatusEnProgreso, StatusCompletado, StatusCancelado:
		return true
	}
	return false
}

type Order struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateParams struct {
	CustomerID    string
	Total         float64
	Status        string
	PaymentMethod string
	Notes         string
}

// ItemParams copia cantidad y precio tal como estaban en el carrito.
type ItemParams struct {
	ProductID string
	Quantity  int
	Price     float64
}

type ListRow struct {
	Order
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

type DetailResponse struct {
	ListRow
	Items []OrderItem `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateManualRequest struct {
	CustomerID    string            `json:"customerId" validate:"required"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
	Notes         string            `json:"notes"`
	Items         []ManualItemInput `json:"items" validate:"required,min=1,dive"`
}

type ManualItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

type DashboardStats struct {
	TotalOrders    int64     `json:"totalOrders"`
	PendingOrders  int64     `json:"pendingOrders"`
	TotalCustomers int64     `json:"totalCustomers"`
	TotalProducts  int64     `json:"totalProducts"`
	Revenue        float64   `json:"revenue"`
	RecentOrders   []ListRow `json:"recentOrders"`
}
