// Package client is a Go client for the storefront API. It persists the
// issued token and user profile in a SessionStore and signals session
// invalidation through an explicit callback: any 401 response clears the
// session and invokes OnUnauthorized, leaving navigation policy to the
// caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Product mirrors the API's product representation.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
	Featured    bool    `json:"featured"`
	Image       string  `json:"image,omitempty"`
}

// RegisterInput carries the fields for Register.
type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CreateProductInput carries the fields for CreateProduct. InStock and
// Featured default server-side to true and false when nil.
type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     *bool   `json:"in_stock,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// UpdateProductInput is a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// ProductFilter narrows Products. Zero values impose no constraint.
type ProductFilter struct {
	Category string
	Featured *bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSessionStore replaces the default in-memory session store.
func WithSessionStore(s SessionStore) Option {
	return func(c *Client) { c.session = s }
}

// WithOnUnauthorized registers the session-invalidation callback. It runs
// after the session is cleared, once per 401 response.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client talks to the storefront API.
type Client struct {
	baseURL        string
	http           *http.Client
	session        SessionStore
	onUnauthorized func()
}

// New creates a Client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		session: NewMemorySessionStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session exposes the underlying session store.
func (c *Client) Session() SessionStore {
	return c.session
}

// Register creates a new customer account. It does not log in.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the issued token and profile in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.session.Set(resp.Token, &resp.User)
	return &resp.User, nil
}

// Logout discards the stored session.
func (c *Client) Logout() {
	c.session.Clear()
}

// Me returns the account behind the stored token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Products lists catalog entries matching filter.
func (c *Client) Products(ctx context.Context, filter ProductFilter) ([]Product, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Featured != nil {
		q.Set("featured", strconv.FormatBool(*filter.Featured))
	}
	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single catalog entry.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a catalog entry (admin token required).
func (c *Client) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct partially updates a catalog entry (admin token required).
func (c *Client) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry (admin token required).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeErrorMessage(r io.Reader) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil || envelope.Error == "" {
		return "request failed"
	}
	return envelope.Error
}
