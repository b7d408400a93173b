package routes

import (
	"mime"
	"net/http"
	"strings"

	"github.com/giannis84/starwars-favorites/internal/config"
	"github.com/go-chi/httprate"
)

// requireJSONAccept rejects requests whose Accept header excludes JSON. A missing header is accepted.
func requireJSONAccept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept")
		if accept != "" && !acceptsJSON(accept) {
			respondWithError(w, http.StatusNotAcceptable, KindInvalidInput, "Accept header must include application/json")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func acceptsJSON(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "application/json", "application/*", "*/*":
			return true
		}
	}
	return false
}

// requireJSONBody rejects requests that do not declare a JSON body.
func requireJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			respondWithError(w, http.StatusUnsupportedMediaType, KindInvalidInput, "Content-Type header must be application/json")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimiter returns a per-IP limiter, or nil when rate limiting is disabled.
func rateLimiter(rl config.RateLimitConfig) func(http.Handler) http.Handler {
	if rl.Requests <= 0 {
		return nil
	}
	return httprate.Limit(rl.Requests, rl.Window,
		httprate.WithKeyByIP(),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondWithError(w, http.StatusTooManyRequests, KindRateLimited, "rate limit exceeded")
		}),
	)
}
