package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var ErrValidation = errors.New("validation failed")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// User models a registered account. PasswordHash never leaves the process:
// the json tag strips it from every response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
