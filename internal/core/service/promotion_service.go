package service

import (
	"context"

	"github.com/promoplaza/promo-api/internal/core/domain"
	"github.com/promoplaza/promo-api/internal/core/ports"
)

// PromotionService is a thin pass-through over the repository: promotions
// carry no business rules beyond persistence.
type PromotionService struct {
	repo ports.PromotionRepository
}

func NewPromotionService(repo ports.PromotionRepository) *PromotionService {
	return &PromotionService{repo: repo}
}

func (s *PromotionService) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.List(ctx)
}

func (s *PromotionService) Create(ctx context.Context, in ports.PromotionInput) (*domain.Promotion, error) {
	return s.repo.Create(ctx, in)
}

func (s *PromotionService) Update(ctx context.Context, id int64, in ports.PromotionInput) error {
	return s.repo.Update(ctx, id, in)
}

func (s *PromotionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
