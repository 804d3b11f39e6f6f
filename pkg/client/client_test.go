package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Login_StoresSession(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "alice@example.com" || body["password"] != "pass1234" {
			t.Fatalf("unexpected credentials: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "token123",
			"user":  map[string]string{"id": "u1", "email": "alice@example.com", "name": "Alice", "role": "customer"},
		})
	})

	c := New(srv.URL + "/api")
	user, err := c.Login(context.Background(), "alice@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if c.Session().Token() != "token123" {
		t.Fatalf("token not stored")
	}
	if stored := c.Session().User(); stored == nil || stored.Email != "alice@example.com" {
		t.Fatalf("user not stored: %+v", stored)
	}
}

func TestClient_Me_SendsBearerToken(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token123" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "alice@example.com", "name": "Alice", "role": "customer"})
	})

	c := New(srv.URL + "/api")
	c.Session().Set("token123", &User{Email: "alice@example.com"})

	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClient_UnauthorizedClearsSessionAndNotifies(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	})

	notified := 0
	c := New(srv.URL+"/api", WithOnUnauthorized(func() { notified++ }))
	c.Session().Set("stale-token", &User{Email: "alice@example.com"})

	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if apiErr.Message != "invalid token" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
	if notified != 1 {
		t.Fatalf("expected exactly one notification, got %d", notified)
	}
	if c.Session().Token() != "" || c.Session().User() != nil {
		t.Fatalf("session not cleared")
	}
}

func TestClient_Products_EncodesFilters(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("category") != "boots" || q.Get("featured") != "true" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]Product{{ID: "p1", Name: "Boot", Category: "boots", Featured: true, InStock: true}})
	})

	c := New(srv.URL + "/api")
	featured := true
	products, err := c.Products(context.Background(), ProductFilter{Category: "boots", Featured: &featured})
	if err != nil {
		t.Fatalf("products failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestClient_Products_NoFilters(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Fatalf("expected no query, got %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]Product{})
	})

	c := New(srv.URL + "/api")
	products, err := c.Products(context.Background(), ProductFilter{})
	if err != nil {
		t.Fatalf("products failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty list, got %+v", products)
	}
}

func TestClient_CreateProduct_ForbiddenForCustomer(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
	})

	notified := false
	c := New(srv.URL+"/api", WithOnUnauthorized(func() { notified = true }))
	c.Session().Set("customer-token", &User{Role: "customer"})

	_, err := c.CreateProduct(context.Background(), CreateProductInput{Name: "X", Price: 1, Category: "shoes"})
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403 APIError, got %v", err)
	}
	// 403 is not a session-invalidation signal.
	if notified {
		t.Fatalf("callback must not fire on 403")
	}
	if c.Session().Token() != "customer-token" {
		t.Fatalf("session must survive a 403")
	}
}

func TestClient_DeleteProduct(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/products/p1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "product deleted"})
	})

	c := New(srv.URL + "/api")
	c.Session().Set("admin-token", &User{Role: "admin"})

	if err := c.DeleteProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestClient_Logout(t *testing.T) {
	c := New("http://localhost/api")
	c.Session().Set("token", &User{Email: "a@b.com"})
	c.Logout()
	if c.Session().Token() != "" || c.Session().User() != nil {
		t.Fatalf("logout did not clear session")
	}
}
