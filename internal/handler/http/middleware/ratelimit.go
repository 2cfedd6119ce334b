package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"news-api/internal/handler/http/respond"
)

// RateLimiter is a per-client token bucket.
type RateLimiter struct {
	limit     rate.Limit
	burst     int
	extractor IPExtractor
	now       func() time.Time

	mu      sync.Mutex
	clients map[string]*client
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perSecond sustained requests with bursts of burst per
// client address.
func NewRateLimiter(perSecond float64, burst int, extractor IPExtractor) *RateLimiter {
	if extractor == nil {
		extractor = &RemoteAddrExtractor{}
	}
	return &RateLimiter{
		limit:     rate.Limit(perSecond),
		burst:     burst,
		extractor: extractor,
		now:       time.Now,
		clients:   make(map[string]*client),
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = rl.now()
	return c.limiter
}

// Middleware rejects requests over the limit with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := rl.extractor.ExtractIP(r)
		if err != nil {
			// an unparseable peer still gets limited, under one shared key
			ip = "unknown"
		}

		res := rl.get(ip).ReserveN(rl.now(), 1)
		if !res.OK() {
			respond.JSON(w, http.StatusTooManyRequests, respond.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		if delay := res.DelayFrom(rl.now()); delay > 0 {
			res.CancelAt(rl.now())
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			slog.Debug("search rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", r.URL.Path))
			respond.JSON(w, http.StatusTooManyRequests, respond.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Cleanup forgets clients idle for longer than maxIdle and returns how many
// were removed.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	cutoff := rl.now().Add(-maxIdle)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	removed := 0
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}

// ActiveClients returns the number of tracked client addresses.
func (rl *RateLimiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}
