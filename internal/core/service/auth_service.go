package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/promoplaza/promo-api/internal/core/domain"
	"github.com/promoplaza/promo-api/internal/core/ports"
	"github.com/promoplaza/promo-api/internal/core/token"
)

const defaultTokenTTL = 2 * time.Hour

// AuthService implements registration and login over a UserRepository.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, nombre, email, password string) (*domain.User, error) {
	if nombre == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// A malformed stored hash also fails the comparison; either way the
	// caller only learns that the password did not match.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrWrongPassword
	}

	signed, err := token.Issue(s.jwtSecret, token.Claims{UserID: user.ID, Email: user.Email}, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Token: signed, Email: user.Email}, nil
}
