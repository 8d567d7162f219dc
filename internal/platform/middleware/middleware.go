// Package middleware builds the cross-origin and rate limiting middleware for
// the public router.
package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"cineclub/internal/platform/config"
	"cineclub/pkg/platform/httputil"
)

// CORS allows the single-page client to call the API with bearer tokens.
func CORS(cfg config.CORS) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	})
}

// RateLimit limits requests per client IP across the API.
func RateLimit(cfg config.RateLimit) func(http.Handler) http.Handler {
	return limit(cfg, cfg.Requests)
}

// AuthRateLimit applies the tighter budget used on register and login.
func AuthRateLimit(cfg config.RateLimit) func(http.Handler) http.Handler {
	requests := cfg.AuthRequests
	if requests <= 0 {
		requests = cfg.Requests
	}
	return limit(cfg, requests)
}

func limit(cfg config.RateLimit, requests int) func(http.Handler) http.Handler {
	if cfg.Disabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			httputil.WriteJSON(w, http.StatusTooManyRequests, map[string]any{
				"success": false,
				"error":   "rate_limited",
				"message": "too many requests",
			})
		}),
	)
}
