package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]ListRow, error)
	Get(ctx context.Context, id string) (Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]ListRow, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (Customer, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return Customer{}, ErrInvalidCustomerID
	}

	c, err := s.repo.GetByID(ctx, cid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrCustomerNotFound
		}
		return Customer{}, err
	}
	return c, nil
}
