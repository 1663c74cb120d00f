package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// ProductService implements catalog management. Name uniqueness is enforced
// by the repository's unique index.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context, page ports.Page) ([]*domain.Product, error) {
	return s.repo.List(ctx, page.Normalize())
}

func (s *ProductService) Get(ctx context.Context, key string) (*domain.Product, error) {
	return s.repo.FindByKey(ctx, key)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Price <= 0 {
		return nil, domain.ErrInvalidProduct
	}

	product := &domain.Product{
		Name:      in.Name,
		Price:     in.Price,
		Image:     in.Image,
		Type:      in.Type,
		DateEntry: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update applies in to the product identified by key. At least one field
// must be supplied, and a supplied price must be a positive integer.
func (s *ProductService) Update(ctx context.Context, key string, in ports.UpdateProductInput) (*domain.Product, error) {
	if in.Name == nil && in.Price == nil && in.Image == nil && in.Type == nil {
		return nil, domain.ErrEmptyUpdate
	}
	if in.Price != nil && (*in.Price <= 0 || *in.Price != math.Trunc(*in.Price)) {
		return nil, domain.ErrInvalidPrice
	}

	return s.repo.Update(ctx, key, ports.ProductUpdate{
		Name:  in.Name,
		Price: in.Price,
		Image: in.Image,
		Type:  in.Type,
	})
}

func (s *ProductService) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}
