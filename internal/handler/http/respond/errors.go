package respond

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"

	"news-api/internal/infra/search"
	"news-api/internal/observability/logging"
)

// FromError classifies err into an AppError carrying the status code and a
// message that is safe to return to clients. Engine bodies, DSNs and other
// internals stay on the wrapped error for logging only.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, search.ErrBadRequest):
		return NewAppError(http.StatusBadRequest, badRequestMessage(err), err)
	case errors.Is(err, search.ErrNotFound):
		return NewAppError(http.StatusNotFound, "article not found", err)
	case errors.Is(err, search.ErrDecodeFailed):
		return NewAppError(http.StatusBadGateway, "invalid response from search engine", err)
	case errors.Is(err, search.ErrEngineUnavailable):
		return NewAppError(http.StatusServiceUnavailable, "search engine unavailable", err)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return NewAppError(http.StatusServiceUnavailable, "service temporarily unavailable", err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewAppError(http.StatusGatewayTimeout, "request timed out", err)
	default:
		return NewAppError(http.StatusInternalServerError, "internal server error", err)
	}
}

// WriteError writes the classified error as {"error": msg}. Server-side
// failures are logged with credentials masked.
func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	appErr := FromError(err)
	if appErr.Code >= http.StatusInternalServerError {
		attrs := []any{
			slog.Int("code", appErr.Code),
			slog.String("user_message", appErr.UserMsg),
			slog.String("error", logging.SanitizeError(err)),
		}
		var se *search.Error
		if errors.As(err, &se) && se.Body != "" {
			attrs = append(attrs, slog.Int("engine_status", se.StatusCode), slog.String("engine_body", se.Body))
		}
		slog.Default().Error("request failed", attrs...)
	}
	JSON(w, appErr.Code, ErrorResponse{Error: appErr.UserMsg})
}

// badRequestMessage extracts the argument complaint from a gateway
// bad-request error, e.g. "search keyword must not be empty".
func badRequestMessage(err error) string {
	var se *search.Error
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return "bad request"
}
