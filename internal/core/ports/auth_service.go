package ports

import (
	"context"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// AuthClaims is the identity extracted from a verified bearer token.
type AuthClaims struct {
	Email string
	Name  string
	Role  string
}

type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Identify returns the current account backing a verified token subject.
	Identify(ctx context.Context, email string) (*domain.User, error)
	// ParseToken verifies a bearer token and returns its claims.
	// Returns domain.ErrInvalidToken for anything malformed, expired, or
	// signed with the wrong key.
	ParseToken(token string) (*AuthClaims, error)
}
