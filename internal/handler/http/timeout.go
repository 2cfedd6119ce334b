package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"news-api/internal/handler/http/respond"
)

// Timeout puts a deadline on the request context so engine and database
// calls give up together. If the handler has not started its response when
// the deadline passes, the client gets 504 and anything the handler writes
// afterwards fails with http.ErrHandlerTimeout. d <= 0 disables it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			gw := &gatedWriter{w: w}
			finished := make(chan struct{})
			go func() {
				defer close(finished)
				next.ServeHTTP(gw, r.WithContext(ctx))
			}()

			select {
			case <-finished:
			case <-ctx.Done():
				if gw.expire() {
					respond.JSON(w, http.StatusGatewayTimeout, respond.ErrorResponse{Error: "request timed out"})
				}
			}
		})
	}
}

// gatedWriter forwards to w until the deadline response takes over.
type gatedWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	started bool
	expired bool
}

func (g *gatedWriter) Header() http.Header { return g.w.Header() }

func (g *gatedWriter) WriteHeader(code int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.expired || g.started {
		return
	}
	g.started = true
	g.w.WriteHeader(code)
}

func (g *gatedWriter) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !g.started {
		g.started = true
		g.w.WriteHeader(http.StatusOK)
	}
	return g.w.Write(p)
}

// expire closes the gate and reports whether the 504 may still be sent.
// A response the handler already started is left to finish as is.
func (g *gatedWriter) expire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return false
	}
	g.expired = true
	return true
}
