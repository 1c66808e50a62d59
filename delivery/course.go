package delivery

import (
	"net/http"

	"github.com/sritampradhan92-jpg/learneEdge/config"
	"github.com/sritampradhan92-jpg/learneEdge/domain"
	"github.com/sritampradhan92-jpg/learneEdge/dto"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUseCase
}

func NewCourseHandler(r *gin.Engine, courseUC domain.CourseUseCase, jwtManager *utils.JWTManager) {
	handler := &CourseHandler{courseUC: courseUC}

	r.GET("/courses", handler.GetCourses)

	protected := r.Group("/courses")
	protected.Use(config.AuthMiddleware(jwtManager))
	{
		protected.POST("/enroll", handler.Enroll)
	}
}

func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.courseUC.GetAllCourses(c.Request.Context())
	if err != nil {
		utils.PrintLogInfo(nil, 500, "GetCourses", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   utils.TranslateDBError(err),
		})
		return
	}

	utils.PrintLogInfo(nil, 200, "GetCourses", nil)
	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

func (h *CourseHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, 400, "Enroll", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	// Enrollments always belong to the authenticated user, whatever userId
	// the body claims.
	userUUID := c.GetString("userUUID")

	enrollment, err := h.courseUC.EnrollCourse(c.Request.Context(), userUUID, req.CourseID, req.CourseTitle)
	if err != nil {
		utils.PrintLogInfo(&userUUID, 500, "Enroll", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to enroll in course",
			"error":   utils.TranslateDBError(err),
		})
		return
	}

	utils.PrintLogInfo(&userUUID, 201, "Enroll", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Course enrolled successfully",
		"enrollmentId": enrollment.EnrollmentID,
		"enrollment":   enrollment,
	})
}
