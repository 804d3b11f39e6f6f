package ports

import (
	"context"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// ProductFilter carries the query parameters for listing products.
// Zero values impose no constraint.
type ProductFilter struct {
	Category string // exact match on category
	Featured *bool  // nil = no filter
}

// ProductRepository defines persistence operations for catalog entries.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Find returns all products matching filter in storage-native order.
	Find(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	// UpdateByID applies the non-nil fields of update and returns the
	// post-update document.
	UpdateByID(ctx context.Context, id string, update UpdateProductInput) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
