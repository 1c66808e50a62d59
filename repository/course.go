package repository

import (
	"context"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"gorm.io/gorm"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.db.WithContext(ctx).Limit(100).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}
