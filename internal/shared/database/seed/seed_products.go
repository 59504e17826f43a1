package seed

import (
	"context"
	"database/sql"
	"log"
)

type productRow struct {
	name        string
	description string
	price       float64
	category    string
	image       string
	stock       int
	isItem      bool
	model3D     string
}

// La carta del café (is_item = FALSE) más algo de merchandising friki
// (is_item = TRUE) para el catálogo.
var products = []productRow{
	{name: "Espresso", description: "Doble shot de la casa", price: 1800, category: "Café", image: "/img/espresso.jpg", stock: 0},
	{name: "Latte", description: "Con leche vaporizada", price: 2500, category: "Café", image: "/img/latte.jpg", stock: 0},
	{name: "Cappuccino", description: "Con cacao amargo", price: 2600, category: "Café", image: "/img/cappuccino.jpg", stock: 0},
	{name: "Medialunas x3", description: "De manteca", price: 1500, category: "Pastelería", image: "/img/medialunas.jpg", stock: 0},
	{name: "Torta de zanahoria", description: "Porción con frosting", price: 3200, category: "Pastelería", image: "/img/carrot.jpg", stock: 0},

	{name: "Dado D20 gigante", description: "Para el rincón rolero", price: 9500, category: "Juegos de mesa", image: "/img/d20.jpg", stock: 12, isItem: true, model3D: "d20.glb"},
	{name: "Taza Frikioteca", description: "Cerámica esmaltada 350ml", price: 7800, category: "Tazas", image: "/img/taza.jpg", stock: 30, isItem: true, model3D: "taza.glb"},
	{name: "Remera pixel art", description: "Algodón peinado, serigrafía", price: 15500, category: "Indumentaria", image: "/img/remera.jpg", stock: 18, isItem: true},
	{name: "Póster mapa fantasy", description: "Impresión A2 papel ilustración", price: 6200, category: "Pósters", image: "/img/mapa.jpg", stock: 25, isItem: true},
}

func SeedProducts(db *sql.DB) error {
	ctx := context.Background()

	log.Println("Seeding products...")

	for _, p := range products {
		_, err := db.ExecContext(ctx, `
			INSERT INTO products (name, description, price, category, image, stock, is_item, model_3d)
			SELECT $1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')
			WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)`,
			p.name, p.description, p.price, p.category, p.image, p.stock, p.isItem, p.model3D,
		)
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d products", len(products))
	return nil
}
