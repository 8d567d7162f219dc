package httpserver

import (
	"net/http"
	"time"

	"cineclub/internal/platform/config"
)

// New builds an HTTP server with the project's timeouts.
func New(cfg config.Server, handler http.Handler) *http.Server {
	writeTimeout := cfg.RequestTimeout + 5*time.Second
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
