package mysql

import (
	"context"
	"fmt"

	"msaRecommender/domain"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		DB: db,
	}
}

// FindAll loads the full course catalog.
func (r *CourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var courses []domain.Course
	if err := r.DB.WithContext(ctx).
		Order("course_id").
		Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}

	return courses, nil
}
