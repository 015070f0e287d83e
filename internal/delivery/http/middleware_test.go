package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{
			name:           "exact match",
			origin:         "http://localhost:5173",
			allowedOrigins: []string{"http://localhost:5173"},
			want:           true,
		},
		{
			name:           "wildcard match",
			origin:         "https://review.archive.example.edu",
			allowedOrigins: []string{"https://*"},
			want:           true,
		},
		{
			name:           "multiple allowed origins - matches second",
			origin:         "http://localhost:5173",
			allowedOrigins: []string{"https://portal.example.edu", "http://localhost:5173"},
			want:           true,
		},
		{
			name:           "port must match exactly",
			origin:         "http://localhost:3000",
			allowedOrigins: []string{"http://localhost:5173"},
			want:           false,
		},
		{
			name:           "no match",
			origin:         "http://evil.com",
			allowedOrigins: []string{"https://portal.example.edu"},
			want:           false,
		},
		{
			name:           "empty origin",
			origin:         "",
			allowedOrigins: []string{"*"},
			want:           false,
		},
		{
			name:           "empty allowed list",
			origin:         "http://localhost:5173",
			allowedOrigins: []string{},
			want:           false,
		},
		{
			name:           "bare wildcard",
			origin:         "http://anything.test",
			allowedOrigins: []string{"*"},
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllowedOrigin(tt.origin, tt.allowedOrigins)
			if got != tt.want {
				t.Errorf("isAllowedOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		origin     string
		method     string
		wantStatus int
		wantCORS   bool
	}{
		{
			name:       "allowed origin - GET request",
			origin:     "http://localhost:5173",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantCORS:   true,
		},
		{
			name:       "allowed origin - OPTIONS request",
			origin:     "http://localhost:5173",
			method:     http.MethodOptions,
			wantStatus: http.StatusNoContent,
			wantCORS:   true,
		},
		{
			name:       "disallowed origin",
			origin:     "http://evil.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantCORS:   false,
		},
		{
			name:       "no origin header",
			origin:     "",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantCORS:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware([]string{"http://localhost:5173"}))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, "OK")
			})

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			corsHeader := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantCORS {
				if corsHeader != tt.origin {
					t.Errorf("Access-Control-Allow-Origin = %s, want %s", corsHeader, tt.origin)
				}
				if w.Header().Get("Access-Control-Expose-Headers") != "X-Request-ID" {
					t.Errorf("Access-Control-Expose-Headers = %q, want X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
				}
			} else if corsHeader != "" {
				t.Errorf("Access-Control-Allow-Origin should not be set for disallowed origin, got %s", corsHeader)
			}
		})
	}
}

func TestCORSMiddleware_PreflightRequest(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	router.POST("/api/v1/analyze", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Errorf("Access-Control-Allow-Methods = %q, want POST", w.Header().Get("Access-Control-Allow-Methods"))
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Request-ID") {
		t.Errorf("Access-Control-Allow-Headers does not list X-Request-ID")
	}
	if w.Header().Get("Access-Control-Max-Age") == "" {
		t.Errorf("Access-Control-Max-Age not set")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		id := w.Header().Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("X-Request-ID = %q, want a UUID: %v", id, err)
		}
		if w.Body.String() != id {
			t.Errorf("context id = %q, header id = %q", w.Body.String(), id)
		}
	})

	t.Run("propagates the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "upload-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "upload-42" {
			t.Errorf("X-Request-ID = %q, want upload-42", got)
		}
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("x", 200))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); len(got) > 128 {
			t.Errorf("oversized X-Request-ID was echoed back")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(NewIPRateLimiter(2)))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := do("10.0.0.1:1234"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}

	w := do("10.0.0.1:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q, want 60", w.Header().Get("Retry-After"))
	}

	if w := do("10.0.0.2:1234"); w.Code != http.StatusOK {
		t.Errorf("other client status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestNewIPRateLimiter_NonPositiveBudget(t *testing.T) {
	l := NewIPRateLimiter(0)
	if l.burst != 1 {
		t.Errorf("burst = %d, want 1", l.burst)
	}
	if l.Limiter("a") != l.Limiter("a") {
		t.Errorf("expected the same limiter for the same ip")
	}
}

func TestIPRateLimiter_EvictsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(10)
	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	first := l.Limiter("10.0.0.1")
	l.Limiter("10.0.0.2")

	clock = clock.Add(2 * time.Minute)
	l.Limiter("10.0.0.2")
	if len(l.visitors) != 2 {
		t.Fatalf("visitors = %d before the idle TTL, want 2", len(l.visitors))
	}

	clock = clock.Add(2 * time.Minute)
	l.Limiter("10.0.0.3")

	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Errorf("idle client 10.0.0.1 was not evicted")
	}
	if _, ok := l.visitors["10.0.0.2"]; !ok {
		t.Errorf("recently seen client 10.0.0.2 was evicted")
	}
	if len(l.visitors) != 2 {
		t.Errorf("visitors = %d, want 2", len(l.visitors))
	}
	if l.Limiter("10.0.0.1") == first {
		t.Errorf("evicted client should get a fresh limiter")
	}
}
