package product

import (
	"context"
	"database/sql"

	"github.com/nicoxroll/frikioteca/internal/shared/database/helper"

	"github.com/google/uuid"
)

type Repository interface {
	ListCatalog(ctx context.Context) ([]Product, error)
	ListMenu(ctx context.Context) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	ListRelated(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]Product, error)
	Create(ctx context.Context, arg CreateRequest) (Product, error)
	Update(ctx context.Context, id uuid.UUID, arg UpdateRequest) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, category, image, stock, is_item, model_3d, created_at`

func (r *repository) ListCatalog(ctx context.Context) ([]Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_item = TRUE
		ORDER BY category ASC`)
}

func (r *repository) ListMenu(ctx context.Context) ([]Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_item = FALSE
		ORDER BY category ASC`)
}

func (r *repository) ListAll(ctx context.Context) ([]Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY category ASC`)
}

func (r *repository) list(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1`,
		id,
	)
	return scanProduct(row)
}

func (r *repository) ListRelated(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_item = TRUE AND category = $1 AND id <> $2
		ORDER BY created_at DESC
		LIMIT $3`,
		category, exclude, limit,
	)
}

func (r *repository) Create(ctx context.Context, arg CreateRequest) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, category, image, stock, is_item, model_3d)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns,
		arg.Name,
		helper.RawStringToNull(arg.Description),
		helper.Float64ToDecimalExact(arg.Price),
		arg.Category,
		arg.Image,
		arg.Stock,
		arg.IsItem,
		helper.RawStringToNull(arg.Model3D),
	)
	return scanProduct(row)
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, arg UpdateRequest) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5,
		    image = $6, stock = $7, is_item = $8, model_3d = $9
		WHERE id = $1
		RETURNING `+productColumns,
		id,
		arg.Name,
		helper.RawStringToNull(arg.Description),
		helper.Float64ToDecimalExact(arg.Price),
		arg.Category,
		arg.Image,
		arg.Stock,
		arg.IsItem,
		helper.RawStringToNull(arg.Model3D),
	)
	return scanProduct(row)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var price string
	var description, image, model3d sql.NullString
	if err := row.Scan(
		&p.ID, &p.Name, &description, &price, &p.Category,
		&image, &p.Stock, &p.IsItem, &model3d, &p.CreatedAt,
	); err != nil {
		return Product{}, err
	}
	p.Price = helper.NumericStringToFloat64(price)
	p.Description = helper.NullStringValue(description)
	p.Image = helper.NullStringValue(image)
	p.Model3D = helper.NullStringValue(model3d)
	return p, nil
}
