package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"github.com/heartmarshall/studyset-backend/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that the first one runs outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}

// Edge is the stack every request to the server passes through before
// routing. Recovery sits inside Logger so a recovered panic is logged as a
// 500; the rate limit is skipped when limiter is nil. Every response carries
// the X-Request-Id header.
func Edge(logger *slog.Logger, cors config.CORSConfig, limiter *RateLimiter) Middleware {
	var limit Middleware
	if limiter != nil {
		limit = limiter.Limit()
	}
	return Chain(
		RequestID(),
		Logger(logger),
		Recovery(logger),
		CORS(cors),
		limit,
	)
}

// writeError answers with the JSON error body used across the API.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
