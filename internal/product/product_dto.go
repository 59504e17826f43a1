package product

import "time"

// Product cubre tanto la carta del café (is_item = false) como el
// merchandising friki (is_item = true).
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Stock       int       `json:"stock"`
	IsItem      bool      `json:"isItem"`
	Model3D     string    `json:"model3d,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	IsItem      bool    `json:"isItem"`
	Model3D     string  `json:"model3d"`
}

type UpdateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	IsItem      bool    `json:"isItem"`
	Model3D     string  `json:"model3d"`
}

// MenuSection agrupa la carta por categoría, como la página /carta.
type MenuSection struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}
