package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promoplaza/promo-api/internal/core/domain"
	"github.com/promoplaza/promo-api/internal/core/ports"
)

// PromotionRepository implements ports.PromotionRepository using pgxpool.
// Every write is a single statement, so no explicit transactions are needed.
type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

// List returns every promotion. The table is small; the frontend renders it
// whole, so there is no pagination.
func (r *PromotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	query := `SELECT id, title, description, image_url, price
	          FROM promociones
	          ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}

	promos, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Promotion])
	if err != nil {
		return nil, fmt.Errorf("scan promotions: %w", err)
	}
	if promos == nil {
		promos = []domain.Promotion{}
	}
	return promos, nil
}

func (r *PromotionRepository) Create(ctx context.Context, in ports.PromotionInput) (*domain.Promotion, error) {
	query := `INSERT INTO promociones (title, description, image_url, price)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	p := domain.Promotion{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
	}
	if err := r.pool.QueryRow(ctx, query, in.Title, in.Description, in.ImageURL, in.Price).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("insert promotion: %w", err)
	}

	return &p, nil
}

// Update replaces every field of the targeted row.
func (r *PromotionRepository) Update(ctx context.Context, id int64, in ports.PromotionInput) error {
	query := `UPDATE promociones
	          SET title = $1, description = $2, image_url = $3, price = $4
	          WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, in.Title, in.Description, in.ImageURL, in.Price, id)
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPromotionNotFound
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM promociones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPromotionNotFound
	}
	return nil
}
