package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sritampradhan92-jpg/learneEdge/utils"

	"github.com/gin-gonic/gin"
)

func TestRequestDeadlineAttached(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	InitMiddleware(r)

	var deadline time.Time
	var hasDeadline bool
	r.GET("/x", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !hasDeadline {
		t.Fatal("handler context carries no deadline")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > 10*time.Second {
		t.Fatalf("deadline %v from now, want within 10s", remaining)
	}
}

func TestHandlerResponseIsNotOverwritten(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	InitMiddleware(r)

	r.GET("/x", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The deadline middleware must never write a competing response.
	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want the handler's own 418", w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := utils.NewJWTManager("test-secret-test-secret-test-secret!", time.Hour)

	r := gin.New()
	r.GET("/x", AuthMiddleware(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userUUID":  c.GetString("userUUID"),
			"userEmail": c.GetString("userEmail"),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", w.Code)
	}

	token, err := jwt.GenerateToken("uuid-1", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, body %s", w.Code, w.Body)
	}
}
