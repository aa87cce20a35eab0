package ports

import (
	"context"

	"github.com/promoplaza/promo-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with the generated ID.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user with the given email, or
	// domain.ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// LoginResult carries everything the login endpoint returns to the client.
type LoginResult struct {
	Token string
	Email string
}

// AuthService implements registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, nombre, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
