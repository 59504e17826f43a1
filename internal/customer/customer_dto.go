package customer

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	DNI       string    `json:"dni,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateParams struct {
	Name  string
	Email string
	Phone string
	DNI   string
}

// ListRow es una fila del listado de admin, con el total de pedidos
// de cada cliente.
type ListRow struct {
	Customer
	OrderCount int64 `json:"orderCount"`
}
