package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"cineclub/internal/account"
	accountservice "cineclub/internal/account/service"
	"cineclub/internal/group"
	groupmetrics "cineclub/internal/group/metrics"
	groupservice "cineclub/internal/group/service"
	jwttoken "cineclub/internal/jwt_token"
	"cineclub/internal/movies"
	movieshandler "cineclub/internal/movies/handler"
	moviesmetrics "cineclub/internal/movies/metrics"
	"cineclub/internal/platform/config"
	"cineclub/internal/platform/metrics"
	"cineclub/internal/platform/middleware"
	"cineclub/internal/platform/postgres"
	redisclient "cineclub/internal/platform/redis"
	"cineclub/pkg/platform/audit/store/memory"
	auditpostgres "cineclub/pkg/platform/audit/store/postgres"
	"cineclub/pkg/platform/httputil"
	"cineclub/pkg/platform/middleware/request"
	"cineclub/pkg/platform/middleware/requesttime"
)

const healthCheckTimeout = 2 * time.Second

// auditLog records audit events and reads back a user's own trail.
type auditLog interface {
	accountservice.AuditPublisher
	accountservice.ActivityLog
}

// app holds the wired dependencies of one server process.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *redisclient.Client
	router http.Handler
}

// newApp opens storage and builds the router. Postgres is used when a database
// URL is configured, in-memory stores otherwise.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	if !cfg.InMemory() {
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.db = db
		if err := postgres.Migrate(ctx, db); err != nil {
			a.close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.redis = rc

	a.router = a.buildRouter()
	return a, nil
}

func (a *app) buildRouter() http.Handler {
	cfg := a.cfg
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.New(registry)

	tokens := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL)
	validator := jwttoken.NewJWTServiceAdapter(tokens)
	var (
		users      account.Directory
		auditStore auditLog
	)
	if a.db != nil {
		users = account.NewPostgresStore(a.db)
		auditStore = auditpostgres.New(a.db)
	} else {
		users = account.NewInMemoryStore()
		auditStore = memory.NewInMemoryStore()
	}
	accounts := account.NewService(users, tokens,
		accountservice.WithLogger(a.logger),
		accountservice.WithAuditPublisher(auditStore),
		accountservice.WithActivityLog(auditStore),
		accountservice.WithMetrics(httpMetrics),
	)

	groupOpts := []group.Option{
		groupservice.WithLogger(a.logger),
		groupservice.WithAuditPublisher(auditStore),
		groupservice.WithMetrics(groupmetrics.New(registry)),
		groupservice.WithUserDirectory(users),
	}
	var groups *group.Service
	if a.db != nil {
		groups = group.NewPostgresService(a.db, newGroupPostgresTx(a.db, cfg.Database.TxTimeout), groupOpts...)
	} else {
		groups = group.NewInMemoryService(groupOpts...)
	}

	var cache movies.Cache = movies.NewMemoryCache(cfg.Movies.MemoryCacheSize)
	if a.redis != nil {
		cache = movies.NewRedisCache(a.redis.Client)
	}
	catalogue := movies.New(cfg.Movies,
		movies.WithLogger(a.logger),
		movies.WithCache(cache),
		movies.WithMetrics(moviesmetrics.New(registry)),
	)

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.ClientMetadata)
	r.Use(request.Recovery(a.logger))
	r.Use(request.Logger(a.logger))
	r.Use(httpMetrics.Middleware)
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(requesttime.Middleware)

	r.Get("/healthz", a.handleHealth)
	r.Handle("/metrics", httpMetrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRateLimit(cfg.RateLimit))
			account.NewHandler(accounts, validator, a.logger).Register(r)
		})
		group.NewHandler(groups, validator, a.logger).Register(r)
		movieshandler.New(catalogue, a.logger).Register(r)
	})

	return r
}

// handleHealth pings the configured backing services.
func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{}
	var failed []error
	if a.db != nil {
		checks["postgres"] = "ok"
		if err := a.db.PingContext(ctx); err != nil {
			checks["postgres"] = "unavailable"
			failed = append(failed, fmt.Errorf("postgres: %w", err))
		}
	}
	if a.redis != nil {
		checks["redis"] = "ok"
		if err := a.redis.Health(ctx); err != nil {
			checks["redis"] = "unavailable"
			failed = append(failed, fmt.Errorf("redis: %w", err))
		}
	}

	if len(failed) > 0 {
		a.logger.WarnContext(ctx, "health check failed", "error", errors.Join(failed...))
		httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable", "checks": checks})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok", "checks": checks})
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("closing redis", "error", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("closing database", "error", err)
		}
	}
}
