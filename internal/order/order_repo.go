package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nicoxroll/frikioteca/internal/shared/database/helper"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, arg CreateParams) (Order, error)
	CreateItems(ctx context.Context, orderID uuid.UUID, items []ItemParams) error
	GetByID(ctx context.Context, id uuid.UUID) (ListRow, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)
	List(ctx context.Context, status string) ([]ListRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Stats(ctx context.Context) (DashboardStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, arg CreateParams) (Order, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, total, status, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, customer_id, total, status, payment_method, notes, created_at`,
		helper.StringToUUID(arg.CustomerID),
		helper.Float64ToDecimalExact(arg.Total),
		arg.Status,
		arg.PaymentMethod,
		helper.RawStringToNull(arg.Notes),
	)
	return scanOrder(row)
}

// CreateItems inserta todas las líneas en un solo INSERT, igual que
// hacía el cliente con el batch insert de order_products.
func (r *repository) CreateItems(ctx context.Context, orderID uuid.UUID, items []ItemParams) error {
	if len(items) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO order_products (order_id, product_id, quantity, price) VALUES ")

	args := make([]any, 0, len(items)*4)
	for i, it := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args,
			orderID,
			helper.StringToUUID(it.ProductID),
			it.Quantity,
			helper.Float64ToDecimalExact(it.Price),
		)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (ListRow, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.customer_id, o.total, o.status, o.payment_method,
		       o.notes, o.created_at, c.name, c.email
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`,
		id,
	)
	return scanListRow(row)
}

func (r *repository) GetItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT op.id, op.order_id, op.product_id, p.name, op.quantity, op.price
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY op.id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderItem
	for rows.Next() {
		var it OrderItem
		var price string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &price); err != nil {
			return nil, err
		}
		it.Price = helper.NumericStringToFloat64(price)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repository) List(ctx context.Context, status string) ([]ListRow, error) {
	query := `
		SELECT o.id, o.customer_id, o.total, o.status, o.payment_method,
		       o.notes, o.created_at, c.name, c.email
		FROM orders o
		JOIN customers c ON c.id = o.customer_id`

	var args []any
	if status != "" {
		query += " WHERE o.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		lr, err := scanListRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1`,
		id, status,
	)
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

func (r *repository) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var revenue string

	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'pendiente'),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = 'completado')`,
	).Scan(
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.TotalCustomers,
		&stats.TotalProducts,
		&revenue,
	)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.Revenue = helper.NumericStringToFloat64(revenue)

	recent, err := r.recentOrders(ctx, 5)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.RecentOrders = recent

	return stats, nil
}

func (r *repository) recentOrders(ctx context.Context, limit int) ([]ListRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.total, o.status, o.payment_method,
		       o.notes, o.created_at, c.name, c.email
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		lr, err := scanListRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	var total string
	var notes sql.NullString
	if err := row.Scan(&o.ID, &o.CustomerID, &total, &o.Status, &o.PaymentMethod, &notes, &o.CreatedAt); err != nil {
		return Order{}, err
	}
	o.Total = helper.NumericStringToFloat64(total)
	o.Notes = helper.NullStringValue(notes)
	return o, nil
}

func scanListRow(row rowScanner) (ListRow, error) {
	var lr ListRow
	var total string
	var notes sql.NullString
	if err := row.Scan(
		&lr.ID, &lr.CustomerID, &total, &lr.Status, &lr.PaymentMethod,
		&notes, &lr.CreatedAt, &lr.CustomerName, &lr.CustomerEmail,
	); err != nil {
		return ListRow{}, err
	}
	lr.Total = helper.NumericStringToFloat64(total)
	lr.Notes = helper.NullStringValue(notes)
	return lr, nil
}
