package customer

import (
	"context"
	"database/sql"

	"github.com/nicoxroll/frikioteca/internal/shared/database/helper"

	"github.com/google/uuid"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (Customer, error)
	Create(ctx context.Context, arg CreateParams) (Customer, error)
	UpdateContact(ctx context.Context, id uuid.UUID, name, phone string) error
	List(ctx context.Context) ([]ListRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, dni, created_at
		FROM customers
		WHERE email = $1`,
		email,
	)
	return scanCustomer(row)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, dni, created_at
		FROM customers
		WHERE id = $1`,
		id,
	)
	return scanCustomer(row)
}

func (r *repository) Create(ctx context.Context, arg CreateParams) (Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (name, email, phone, dni)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, dni, created_at`,
		arg.Name,
		arg.Email,
		arg.Phone,
		helper.RawStringToNull(arg.DNI),
	)
	return scanCustomer(row)
}

func (r *repository) UpdateContact(ctx context.Context, id uuid.UUID, name, phone string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET name = $2, phone = $3
		WHERE id = $1`,
		id, name, phone,
	)
	return err
}

func (r *repository) List(ctx context.Context) ([]ListRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.email, c.phone, c.dni, c.created_at,
		       COUNT(o.id) AS order_count
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.name, c.email, c.phone, c.dni, c.created_at
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		var lr ListRow
		var dni sql.NullString
		if err := rows.Scan(
			&lr.ID, &lr.Name, &lr.Email, &lr.Phone, &dni, &lr.CreatedAt,
			&lr.OrderCount,
		); err != nil {
			return nil, err
		}
		lr.DNI = helper.NullStringValue(dni)
		out = append(out, lr)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (Customer, error) {
	var c Customer
	var dni sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &dni, &c.CreatedAt); err != nil {
		return Customer{}, err
	}
	c.DNI = helper.NullStringValue(dni)
	return c, nil
}
