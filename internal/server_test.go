package internal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/giannis84/starwars-favorites/internal/config"
	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/models"
	"github.com/giannis84/starwars-favorites/internal/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name             string
		cfg              ServiceConfig
		wantAddr         string
		wantReadTimeout  time.Duration
		wantWriteTimeout time.Duration
		wantIdleTimeout  time.Duration
	}{
		{
			name: "applies default timeouts when none provided",
			cfg: ServiceConfig{
				Addr:   ":8080",
				Logger: testLogger(),
			},
			wantAddr:         ":8080",
			wantReadTimeout:  15 * time.Second,
			wantWriteTimeout: 15 * time.Second,
			wantIdleTimeout:  60 * time.Second,
		},
		{
			name: "uses custom timeouts when provided",
			cfg: ServiceConfig{
				Addr:         ":9090",
				Logger:       testLogger(),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  30 * time.Second,
			},
			wantAddr:         ":9090",
			wantReadTimeout:  5 * time.Second,
			wantWriteTimeout: 10 * time.Second,
			wantIdleTimeout:  30 * time.Second,
		},
		{
			name: "partial custom timeouts uses defaults for the rest",
			cfg: ServiceConfig{
				Addr:        ":8080",
				Logger:      testLogger(),
				ReadTimeout: 3 * time.Second,
			},
			wantAddr:         ":8080",
			wantReadTimeout:  3 * time.Second,
			wantWriteTimeout: 15 * time.Second,
			wantIdleTimeout:  60 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.cfg)

			if svc.HTTPServer == nil {
				t.Fatal("expected HTTPServer to be set")
			}
			if svc.Router == nil {
				t.Fatal("expected Router to be set")
			}
			if svc.Logger == nil {
				t.Fatal("expected Logger to be set")
			}
			if svc.HTTPServer.Addr != tt.wantAddr {
				t.Errorf("expected Addr %q, got %q", tt.wantAddr, svc.HTTPServer.Addr)
			}
			if svc.HTTPServer.ReadTimeout != tt.wantReadTimeout {
				t.Errorf("expected ReadTimeout %v, got %v", tt.wantReadTimeout, svc.HTTPServer.ReadTimeout)
			}
			if svc.HTTPServer.WriteTimeout != tt.wantWriteTimeout {
				t.Errorf("expected WriteTimeout %v, got %v", tt.wantWriteTimeout, svc.HTTPServer.WriteTimeout)
			}
			if svc.HTTPServer.IdleTimeout != tt.wantIdleTimeout {
				t.Errorf("expected IdleTimeout %v, got %v", tt.wantIdleTimeout, svc.HTTPServer.IdleTimeout)
			}
		})
	}
}

func apiService(t *testing.T, buf *bytes.Buffer) *Service {
	t.Helper()
	repo := database.NewMockRepository()
	repo.AddUser(&models.User{ID: 1, Email: "luke@rebels.org", Password: "hash", IsActive: true})
	repo.AddPlanet(&models.Planet{ID: 5, Name: "Tatooine"})
	if err := repo.AddFavoriteInDB(context.Background(), models.NewFavorite(1, models.TargetKindPlanet, 5, "Tatooine")); err != nil {
		t.Fatalf("seeding favorite: %v", err)
	}

	return NewService(ServiceConfig{
		Addr:   ":0",
		Logger: slog.New(slog.NewTextHandler(buf, nil)),
		Routes: routes.RegisterAPIRoutes(repo, config.RateLimitConfig{}),
	})
}

func TestNewService_APIRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "first favorite", method: "GET", path: "/1/favorites", wantStatus: http.StatusOK, wantBody: "Tatooine"},
		{name: "trailing slash is stripped", method: "GET", path: "/1/favorites/", wantStatus: http.StatusOK, wantBody: "Tatooine"},
		{name: "all favorites", method: "GET", path: "/1/favorites/all", wantStatus: http.StatusOK, wantBody: "Tatooine"},
		{name: "unknown path", method: "GET", path: "/starships/1", wantStatus: http.StatusNotFound, wantBody: `"kind":"not_found"`},
		{name: "wrong method", method: "PUT", path: "/1/favorites", wantStatus: http.StatusMethodNotAllowed, wantBody: `"kind":"invalid_input"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := apiService(t, &bytes.Buffer{})

			rr := httptest.NewRecorder()
			svc.Router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tt.wantBody) {
				t.Errorf("expected body to contain %q, got %q", tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestNewService_RequestScopedLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	svc := apiService(t, buf)

	req := httptest.NewRequest("GET", "/1/favorites", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rr := httptest.NewRecorder()
	svc.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var routeLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "received get favorite request") {
			routeLine = line
			break
		}
	}
	if routeLine == "" {
		t.Fatalf("expected route log line, got %q", buf.String())
	}
	if !strings.Contains(routeLine, "request_id=req-42") {
		t.Errorf("expected route log line to carry request_id=req-42, got %q", routeLine)
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestNewService_HealthRoutes(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		path       string
		wantStatus int
	}{
		{name: "live", path: "/health/live", wantStatus: http.StatusOK},
		{name: "ready", path: "/health/ready", wantStatus: http.StatusOK},
		{name: "ready with trailing slash", path: "/health/ready/", wantStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("down"), path: "/health/ready", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(ServiceConfig{
				Addr:   ":0",
				Logger: testLogger(),
				Routes: routes.RegisterHealthRoutes(pingerFunc(func(context.Context) error { return tt.pingErr })),
			})

			if svc.HTTPServer.Handler != svc.Router {
				t.Fatal("expected HTTPServer.Handler to be the chi router")
			}

			rr := httptest.NewRecorder()
			svc.Router.ServeHTTP(rr, httptest.NewRequest("GET", tt.path, nil))

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
		})
	}
}
