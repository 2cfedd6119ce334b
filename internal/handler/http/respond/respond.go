// Package respond writes JSON responses and turns errors into client-safe
// {"error": "..."} bodies.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"news-api/internal/observability/logging"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error" example:"search keyword must not be empty"`
}

// JSON encodes v with status code. A nil v sends headers only.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone; all that is left is to record it.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// safeFragments mark validation messages that may be echoed to clients.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"must not be",
	"cannot be",
	"too long",
	"too short",
}

func isSafeMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, f := range safeFragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// SafeError writes err for a handler-detected failure. 4xx validation
// messages are echoed and other 4xx messages are replaced by the status
// text, logged at warn. Every 5xx becomes "internal server error" and the
// masked detail is logged at error.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	attrs := []any{
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", logging.SanitizeError(err)),
	}
	if code < http.StatusInternalServerError {
		if isSafeMessage(msg) {
			JSON(w, code, ErrorResponse{Error: msg})
			return
		}
		slog.Default().Warn("client error", attrs...)
		JSON(w, code, ErrorResponse{Error: strings.ToLower(http.StatusText(code))})
		return
	}
	slog.Default().Error("internal server error", attrs...)
	JSON(w, code, ErrorResponse{Error: "internal server error"})
}

// AppError pairs an internal error with the status and message clients see.
type AppError struct {
	Code    int
	UserMsg string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError builds an AppError. err may be nil for purely client-side
// failures.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}
