package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"io.winapps.portfolio/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	valid string
}

func (v stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	switch token {
	case v.valid:
		return "session-1", nil
	case "ended":
		return "", auth.ErrSessionNotFound
	case "store-down":
		return "", fmt.Errorf("failed to look up session: %w", errors.New("dial tcp: connection refused"))
	}
	return "", auth.ErrInvalidToken
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AdminAuthMiddleware(stubVerifier{valid: "good"}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("uid"), "session": c.GetString(SessionIDKey)})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"ended session", "Bearer ended", http.StatusUnauthorized},
		{"session store failure", "Bearer store-down", http.StatusInternalServerError},
		{"valid token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
	if w.Body.String() != "abc-123" {
		t.Errorf("context request_id = %q, want abc-123", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("generated X-Request-ID is empty")
	}
}

func TestRequestLoggingLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()

	r := gin.New()
	r.Use(RequestLoggingMiddleware(logger, "/health"))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"}) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	if n := logs.FilterLevelExact(zapcore.InfoLevel).Len(); n != 0 {
		t.Errorf("health check produced %d info logs, want 0", n)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	warns := logs.FilterMessage("request completed with client error").All()
	if len(warns) != 1 {
		t.Fatalf("got %d client error logs, want 1", len(warns))
	}
	if body, _ := warns[0].ContextMap()["response"].(string); body == "" {
		t.Error("client error log has no response body")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryMiddleware(zap.NewNop().Sugar()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestSessionStoreFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestLoggingMiddleware(zap.New(core).Sugar()))
	r.GET("/admin", AdminAuthMiddleware(stubVerifier{valid: "good"}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer store-down")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed with server error").All()
	if len(entries) != 1 {
		t.Fatalf("got %d server error logs, want 1", len(entries))
	}
	if cause, _ := entries[0].ContextMap()["errors"].(string); !strings.Contains(cause, "connection refused") {
		t.Errorf("logged errors = %q, want the session store cause", cause)
	}
}
