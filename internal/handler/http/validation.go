package http

import (
	"errors"
	"net/http"

	"news-api/internal/handler/http/respond"
)

// Request size limits for the read-only API.
const (
	MaxPathLength  = 2048
	MaxQueryLength = 4096
)

// InputValidation rejects requests the API can never serve: over-long paths
// or query strings, and methods other than GET, HEAD and OPTIONS.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
			default:
				w.Header().Set("Allow", "GET, HEAD, OPTIONS")
				respond.JSON(w, http.StatusMethodNotAllowed, respond.ErrorResponse{Error: "method not allowed"})
				return
			}

			if len(r.URL.Path) > MaxPathLength {
				respond.JSON(w, http.StatusRequestURITooLong, respond.ErrorResponse{Error: "URI too long"})
				return
			}
			if len(r.URL.RawQuery) > MaxQueryLength {
				respond.SafeError(w, http.StatusBadRequest, errors.New("query string too long"))
				return
			}

			// Nothing reads a body; cap it so a client cannot stream one at us.
			r.Body = http.MaxBytesReader(w, r.Body, 1<<10)

			next.ServeHTTP(w, r)
		})
	}
}
