package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: name is required", domain.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: price must not be negative", domain.ErrInvalidProduct), http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}
	for _, tc := range cases {
		code, msg := invokeErrorHandler(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg == "" {
			t.Fatalf("%v: expected a message", tc.err)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := invokeErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "invalid payload" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := invokeErrorHandler(t, errors.New("connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
