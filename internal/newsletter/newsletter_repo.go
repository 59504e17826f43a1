package newsletter

import (
	"context"
	"database/sql"
)

type Repository interface {
	// Subscribe devuelve false si el email ya estaba suscripto.
	Subscribe(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Subscribe(ctx context.Context, email string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO newsletter_subscribers (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING`,
		email,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
