package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	header := resp.Header().Get("X-Request-Id")
	if header == "" {
		t.Fatalf("expected X-Request-Id header on the response")
	}
	if header != seen {
		t.Fatalf("context id %q does not match header %q", seen, header)
	}
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("expected generated id to be a uuid, got %q: %v", header, err)
	}
}

func TestRequestIDPreservesCallerValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "caller-supplied-1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Request-Id"); got != "caller-supplied-1" {
		t.Fatalf("expected caller id echoed back, got %q", got)
	}
}
