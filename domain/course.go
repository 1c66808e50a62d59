package domain

import (
	"context"
	"time"
)

type Course struct {
	CourseID    string    `gorm:"primaryKey" json:"courseId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Level       string    `json:"level"` // beginner | intermediate | advanced
	Duration    string    `json:"duration"`
	Price       float64   `json:"price"`
	Thumbnail   string    `json:"thumbnail"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type Enrollment struct {
	EnrollmentID string    `gorm:"primaryKey" json:"enrollmentId"`
	UserID       string    `gorm:"index;not null" json:"userId"`
	CourseID     string    `gorm:"not null" json:"courseId"`
	CourseTitle  string    `json:"courseTitle"`
	Status       string    `gorm:"not null" json:"status"` // active | completed
	Progress     int       `gorm:"not null;default:0" json:"progress"`
	EnrolledAt   time.Time `gorm:"autoCreateTime" json:"enrolledAt"`
}

type CourseRepository interface {
	GetAllCourses(ctx context.Context) ([]Course, error)
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) error
}

type CourseUseCase interface {
	GetAllCourses(ctx context.Context) ([]Course, error)
	EnrollCourse(ctx context.Context, userID, courseID, courseTitle string) (*Enrollment, error)
}
