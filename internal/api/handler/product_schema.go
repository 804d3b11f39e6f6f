package handler

import "time"

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Category    string   `json:"category"    validate:"required,oneof=shoes boots sneakers slides other"`
	InStock     *bool    `json:"in_stock"`
	Featured    *bool    `json:"featured"`
	Image       string   `json:"image"       validate:"omitempty,url"`
}

// updateProductRequest carries a partial update: absent fields stay nil and
// leave the stored value untouched.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=shoes boots sneakers slides other"`
	InStock     *bool    `json:"in_stock"`
	Featured    *bool    `json:"featured"`
	Image       *string  `json:"image"       validate:"omitempty,url"`
}

type productResponse struct {
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

type messageResponse struct {
	Message string `json:"message"`
}
