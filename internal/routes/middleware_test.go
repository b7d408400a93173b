package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giannis84/starwars-favorites/internal/config"
	"github.com/giannis84/starwars-favorites/internal/database"
)

func TestAcceptHeaderMiddleware(t *testing.T) {
	router, _ := setupMockHandler(t)

	tests := []struct {
		name      string
		accept    string
		wantCode  int
		wantError string
	}{
		{name: "missing Accept header is allowed", accept: "", wantCode: http.StatusOK},
		{name: "wrong Accept header", accept: "text/html", wantCode: http.StatusNotAcceptable, wantError: "Accept header must include application/json"},
		{name: "Accept */* is allowed", accept: "*/*", wantCode: http.StatusOK},
		{name: "Accept application/json is allowed", accept: "application/json", wantCode: http.StatusOK},
		{name: "Accept with parameters is allowed", accept: "application/json; charset=utf-8", wantCode: http.StatusOK},
		{name: "Accept with multiple types including json", accept: "text/html, application/json;q=0.9", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/planets", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d. Body: %s", tt.wantCode, rr.Code, rr.Body.String())
			}
			if tt.wantError != "" {
				if resp := decodeError(t, rr); resp.Error != tt.wantError {
					t.Errorf("expected error %q, got %q", tt.wantError, resp.Error)
				}
			}
		})
	}
}

func TestContentTypeMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		wantCode    int
	}{
		{name: "POST missing Content-Type", method: "POST", contentType: "", wantCode: http.StatusUnsupportedMediaType},
		{name: "POST wrong Content-Type", method: "POST", contentType: "text/plain", wantCode: http.StatusUnsupportedMediaType},
		{name: "POST JSON with charset", method: "POST", contentType: "application/json; charset=utf-8", wantCode: http.StatusOK},
		{name: "DELETE without Content-Type is allowed", method: "DELETE", contentType: "", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupMockHandler(t)

			req := httptest.NewRequest(tt.method, "/1/favorites/planet/5", bytes.NewBufferString(`{"name":"Tatooine"}`))
			req.Header.Set("Accept", "application/json")
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d. Body: %s", tt.wantCode, rr.Code, rr.Body.String())
			}
			if tt.wantCode == http.StatusUnsupportedMediaType {
				if resp := decodeError(t, rr); resp.Error != "Content-Type header must be application/json" {
					t.Errorf("unexpected error: %+v", resp)
				}
			}
		})
	}
}

func TestRateLimiting(t *testing.T) {
	tests := []struct {
		name      string
		rl        config.RateLimitConfig
		requests  int
		want429At int // 1-based index of the first limited request, 0 if none
	}{
		{name: "disabled", rl: config.RateLimitConfig{}, requests: 5},
		{name: "limits after quota", rl: config.RateLimitConfig{Requests: 2, Window: time.Minute}, requests: 3, want429At: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(database.NewMockRepository(), tt.rl)

			for i := 1; i <= tt.requests; i++ {
				rr := doRequest(router, "GET", "/planets", nil)
				limited := rr.Code == http.StatusTooManyRequests
				if wantLimited := tt.want429At != 0 && i >= tt.want429At; limited != wantLimited {
					t.Fatalf("request %d: expected limited=%v, got status %d", i, wantLimited, rr.Code)
				}
				if limited {
					if resp := decodeError(t, rr); resp.Kind != KindRateLimited {
						t.Errorf("expected kind %q, got %q", KindRateLimited, resp.Kind)
					}
				}
			}
		})
	}
}
