package dto

type EnrollRequest struct {
	UserID      string `json:"userId" binding:"omitempty"`
	CourseID    string `json:"courseId" binding:"required"`
	CourseTitle string `json:"courseTitle" binding:"required,max=255"`
}
