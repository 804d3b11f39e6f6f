package ports

import (
	"context"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog entry.
// InStock and Featured default to true and false respectively when nil.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     *bool
	Featured    *bool
	Image       string
}

// UpdateProductInput is a partial update: only non-nil fields change.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
	Featured    *bool
	Image       *string
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
