package service

import (
	"context"

	"github.com/sritampradhan92-jpg/learneEdge/domain"

	"github.com/google/uuid"
)

type courseUseCase struct {
	repo domain.CourseRepository
}

func NewCourseUseCase(repo domain.CourseRepository) domain.CourseUseCase {
	return &courseUseCase{repo: repo}
}

func (s *courseUseCase) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	return s.repo.GetAllCourses(ctx)
}

func (s *courseUseCase) EnrollCourse(ctx context.Context, userID, courseID, courseTitle string) (*domain.Enrollment, error) {
	enrollment := &domain.Enrollment{
		EnrollmentID: uuid.NewString(),
		UserID:       userID,
		CourseID:     courseID,
		CourseTitle:  courseTitle,
		Status:       "active",
		Progress:     0,
	}

	if err := s.repo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}
