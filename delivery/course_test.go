package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/domain"
	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"github.com/gin-gonic/gin"
)

type stubCourseUC struct {
	courses    []domain.Course
	gotUserID  string
	enrollment *domain.Enrollment
}

func (s *stubCourseUC) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courses, nil
}

func (s *stubCourseUC) EnrollCourse(ctx context.Context, userID, courseID, courseTitle string) (*domain.Enrollment, error) {
	s.gotUserID = userID
	s.enrollment = &domain.Enrollment{
		EnrollmentID: "enr-1",
		UserID:       userID,
		CourseID:     courseID,
		CourseTitle:  courseTitle,
		Status:       "active",
	}
	return s.enrollment, nil
}

func newCourseRouter(stub *stubCourseUC, jwt *utils.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewCourseHandler(r, stub, jwt)
	return r
}

func TestGetCoursesPublic(t *testing.T) {
	stub := &stubCourseUC{courses: []domain.Course{
		{CourseID: "c1", Title: "Go Fundamentals"},
		{CourseID: "c2", Title: "Distributed Systems"},
	}}
	jwt := utils.NewJWTManager("test-secret-test-secret-test-secret!", time.Hour)
	r := newCourseRouter(stub, jwt)

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	body := decodeBody(t, w)
	if body["count"] != float64(2) {
		t.Fatalf("count = %v, want 2", body["count"])
	}
	if _, ok := body["courses"]; !ok {
		t.Fatal("courses key missing from response")
	}
}

func TestEnrollRequiresAuth(t *testing.T) {
	jwt := utils.NewJWTManager("test-secret-test-secret-test-secret!", time.Hour)
	r := newCourseRouter(&stubCourseUC{}, jwt)

	w := doJSON(t, r, http.MethodPost, "/courses/enroll", gin.H{
		"courseId":    "c1",
		"courseTitle": "Go Fundamentals",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestEnrollUsesTokenIdentity(t *testing.T) {
	stub := &stubCourseUC{}
	jwt := utils.NewJWTManager("test-secret-test-secret-test-secret!", time.Hour)
	r := newCourseRouter(stub, jwt)

	token, err := jwt.GenerateToken("uuid-1", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// The body claims another user; the token wins.
	w := doJSONAuth(t, r, http.MethodPost, "/courses/enroll", gin.H{
		"userId":      "uuid-attacker",
		"courseId":    "c1",
		"courseTitle": "Go Fundamentals",
	}, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if stub.gotUserID != "uuid-1" {
		t.Fatalf("enrolled as %q, want the token identity uuid-1", stub.gotUserID)
	}
	body := decodeBody(t, w)
	if body["enrollmentId"] != "enr-1" {
		t.Fatalf("enrollmentId missing: %v", body)
	}
}
