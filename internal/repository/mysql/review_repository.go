package mysql

import (
	"context"
	"fmt"

	"msaRecommender/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

// FindAll loads the review log used to derive each user's rated set.
func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.Review
	if err := r.DB.WithContext(ctx).
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	return reviews, nil
}
