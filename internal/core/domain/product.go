package domain

import (
	"errors"
	"time"
)

// Known catalog categories. The set mirrors the storefront's filter bar and
// is open to extension; ValidCategory is the single place to grow it.
const (
	CategoryShoes    = "shoes"
	CategoryBoots    = "boots"
	CategorySneakers = "sneakers"
	CategorySlides   = "slides"
	CategoryOther    = "other"
)

var categories = map[string]struct{}{
	CategoryShoes:    {},
	CategoryBoots:    {},
	CategorySneakers: {},
	CategorySlides:   {},
	CategoryOther:    {},
}

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProduct = errors.New("invalid product")

// ValidCategory reports whether c is a recognized catalog category.
func ValidCategory(c string) bool {
	_, ok := categories[c]
	return ok
}

// Product is a single catalog entry.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	InStock     bool      `json:"in_stock"`
	Featured    bool      `json:"featured"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
