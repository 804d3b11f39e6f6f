package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/api/metrics"
	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

// ProductService implements catalog CRUD and filtering.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns all products matching filter in storage-native order.
func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.repo.Find(ctx, filter)
}

// Get retrieves a single product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and persists a new catalog entry. Defaults apply for
// omitted flags: in_stock=true, featured=false.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidProduct)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidProduct)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidProduct, input.Category)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidProduct)
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	featured := false
	if input.Featured != nil {
		featured = *input.Featured
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		InStock:     inStock,
		Featured:    featured,
		Image:       input.Image,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

// Update applies a partial update: only the non-nil fields of input change.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidProduct)
	}
	if input.Category != nil && !domain.ValidCategory(*input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidProduct, *input.Category)
	}
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidProduct)
	}

	updated, err := s.repo.UpdateByID(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", updated.ID).Msg("product updated")
	return updated, nil
}

// Delete removes a product immediately; there is no soft-delete.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	metrics.ProductsDeletedTotal.Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
