package ports

import (
	"context"

	"github.com/promoplaza/promo-api/internal/core/domain"
)

// PromotionInput carries the writable fields of a promotion. Updates are
// full-row replaces, so every field is always provided.
type PromotionInput struct {
	Title       string
	Description string
	ImageURL    string
	Price       float64
}

// PromotionRepository defines the persistence contract for promotions.
type PromotionRepository interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	Create(ctx context.Context, in PromotionInput) (*domain.Promotion, error)
	// Update replaces every field of the row with the given id. Returns
	// domain.ErrPromotionNotFound when no row matches.
	Update(ctx context.Context, id int64, in PromotionInput) error
	// Delete removes the row with the given id. Returns
	// domain.ErrPromotionNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}

// PromotionService exposes promotion reads and admin-gated writes.
type PromotionService interface {
	List(ctx context.Context) ([]domain.Promotion, error)
	Create(ctx context.Context, in PromotionInput) (*domain.Promotion, error)
	Update(ctx context.Context, id int64, in PromotionInput) error
	Delete(ctx context.Context, id int64) error
}
