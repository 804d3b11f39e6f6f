package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.listFn(ctx, filter)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_List_ForwardsFilters(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
			if filter.Category != "boots" {
				t.Fatalf("expected category boots, got %q", filter.Category)
			}
			if filter.Featured == nil || !*filter.Featured {
				t.Fatalf("expected featured=true filter")
			}
			return []*domain.Product{
				{ID: "p1", Name: "Boot", Category: "boots", Featured: true, InStock: true},
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/products?category=boots&featured=true&sort=asc", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "p1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_List_IgnoresUnknownParams(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
			if filter.Category != "" || filter.Featured != nil {
				t.Fatalf("expected empty filter, got %+v", filter)
			}
			return []*domain.Product{}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/products?color=red&featured=maybe", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Runner" || input.Price != 120 || input.Category != "sneakers" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Featured == nil || !*input.Featured {
				t.Fatalf("expected featured=true")
			}
			return &domain.Product{ID: "p9", Name: input.Name, Price: input.Price, Category: input.Category, InStock: true, Featured: true}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Runner","price":120,"category":"sneakers","featured":true}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "p9" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	cases := []string{
		`{"price":10,"category":"shoes"}`,
		`{"name":"X","category":"shoes"}`,
		`{"name":"X","price":10}`,
		`{"name":"X","price":-1,"category":"shoes"}`,
		`{"name":"X","price":10,"category":"hats"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/api/products", body)
		if code := httpErrorCode(t, h.Create(c)); code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, code)
		}
	}
}

func TestProductHandler_Create_ZeroPrice(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Price != 0 {
				t.Fatalf("expected price 0, got %v", input.Price)
			}
			return &domain.Product{ID: "p1", Name: input.Name, Category: input.Category, InStock: true}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Freebie","price":0,"category":"other"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Update_PartialBody(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Price == nil || *input.Price != 45 {
				t.Fatalf("expected price pointer 45")
			}
			if input.Name != nil || input.Category != nil || input.InStock != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &domain.Product{ID: id, Name: "Original", Price: 45, Category: "shoes", InStock: true}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/products/p1", `{"price":45}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/products/missing", `{"price":45}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "product deleted" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
