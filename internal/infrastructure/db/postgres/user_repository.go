package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promoplaza/promo-api/internal/core/domain"
)

// SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// UserRepository implements ports.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a new user. A duplicate email trips the unique constraint on
// usuarios.email and maps to domain.ErrEmailTaken so the handler can answer
// distinctly from other write failures.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO usuarios (nombre, email, password, created_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	created := *user
	err := r.pool.QueryRow(ctx, query, user.Nombre, user.Email, user.PasswordHash, user.CreatedAt).
		Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &created, nil
}

// FindByEmail returns the user with the given email, or domain.ErrUserNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, nombre, email, password, created_at
	          FROM usuarios
	          WHERE email = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &u, nil
}
