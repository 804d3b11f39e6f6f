package handler

import (
	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	input := ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		InStock:     req.InStock,
		Featured:    req.Featured,
		Image:       req.Image,
	}
	if req.Price != nil {
		input.Price = *req.Price
	}
	return input
}

func toUpdateInput(req updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
		Featured:    req.Featured,
		Image:       req.Image,
	}
}

// --- Domain → HTTP response ---

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		InStock:     p.InStock,
		Featured:    p.Featured,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
