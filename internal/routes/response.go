package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/handlers"
	"github.com/giannis84/starwars-favorites/internal/logging"
)

// Error kinds carried in every error response.
const (
	KindInvalidInput     = "invalid_input"
	KindNotFound         = "not_found"
	KindAlreadyExists    = "already_exists"
	KindRetrievalFailure = "retrieval_failure"
	KindInternal         = "internal"
	KindRateLimited      = "rate_limited"
)

type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// notFoundError replaces the message of a not-found error while keeping it matchable.
type notFoundError struct {
	msg string
	err error
}

func (e *notFoundError) Error() string { return e.msg }
func (e *notFoundError) Unwrap() error { return e.err }

func notFound(err error, format string, args ...any) error {
	return &notFoundError{msg: fmt.Sprintf(format, args...), err: err}
}

// writeError maps an error to its status code and kind, logs it and writes the envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, kind, msg := classify(err)

	log := logging.Log(r.Context()).Layer("routes").Str("path", r.URL.Path).
		Str("kind", kind).Int("status_code", code).Err(err)
	if code >= http.StatusInternalServerError {
		log.Error("request failed")
	} else {
		log.Warn("request rejected")
	}

	respondWithError(w, code, kind, msg)
}

func classify(err error) (int, string, string) {
	var validationErr *handlers.ValidationError
	var retrievalErr *handlers.RetrievalError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, KindInvalidInput, err.Error()
	case errors.Is(err, database.ErrAlreadyExists):
		return http.StatusConflict, KindAlreadyExists, "a favorite with this name already exists"
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, KindNotFound, err.Error()
	case errors.As(err, &retrievalErr):
		return http.StatusInternalServerError, KindRetrievalFailure, retrievalErr.Error()
	default:
		return http.StatusInternalServerError, KindInternal, "internal server error"
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, kind, message string) {
	respondWithJSON(w, code, ErrorResponse{Kind: kind, Error: message})
}
