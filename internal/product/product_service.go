package product

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const relatedLimit = 4

type Service interface {
	Catalog(ctx context.Context) ([]Product, error)
	Menu(ctx context.Context) ([]MenuSection, error)
	Get(ctx context.Context, id string) (Product, error)
	Related(ctx context.Context, id string) ([]Product, error)

	// Back-office
	ListAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, req CreateRequest) (Product, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo          Repository
	validate      *validator.Validate
	modelsBaseURL string
}

// NewService recibe la URL base del bucket de modelos 3D; las
// referencias relativas de model_3d se resuelven contra ella.
func NewService(repo Repository, modelsBaseURL string) Service {
	return &service{
		repo:          repo,
		validate:      validator.New(),
		modelsBaseURL: strings.TrimSuffix(modelsBaseURL, "/"),
	}
}

func (s *service) resolveModel(p Product) Product {
	if p.Model3D == "" || strings.HasPrefix(p.Model3D, "http") {
		return p
	}
	if s.modelsBaseURL == "" {
		return p
	}
	p.Model3D = s.modelsBaseURL + "/" + p.Model3D
	return p
}

func (s *service) resolveModels(products []Product) []Product {
	for i := range products {
		products[i] = s.resolveModel(products[i])
	}
	return products
}

func (s *service) Catalog(ctx context.Context) ([]Product, error) {
	products, err := s.repo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveModels(products), nil
}

func (s *service) Menu(ctx context.Context) ([]MenuSection, error) {
	products, err := s.repo.ListMenu(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]Product)
	for _, p := range products {
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	categories := make([]string, 0, len(grouped))
	for c := range grouped {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	sections := make([]MenuSection, 0, len(categories))
	for _, c := range categories {
		sections = append(sections, MenuSection{
			Category: c,
			Products: grouped[c],
		})
	}
	return sections, nil
}

func (s *service) Get(ctx context.Context, id string) (Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return Product{}, ErrInvalidProductID
	}

	p, err := s.repo.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, err
	}
	return s.resolveModel(p), nil
}

func (s *service) Related(ctx context.Context, id string) ([]Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	p, err := s.repo.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	related, err := s.repo.ListRelated(ctx, p.Category, pid, relatedLimit)
	if err != nil {
		return nil, err
	}
	return s.resolveModels(related), nil
}

func (s *service) ListAll(ctx context.Context) ([]Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return Product{}, ErrInvalidProductInput
	}
	return s.repo.Create(ctx, req)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return Product{}, ErrInvalidProductInput
	}

	pid, err := uuid.Parse(id)
	if err != nil {
		return Product{}, ErrInvalidProductID
	}

	p, err := s.repo.Update(ctx, pid, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrProductNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidProductID
	}

	if err := s.repo.Delete(ctx, pid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}
