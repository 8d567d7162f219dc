package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cineclub/internal/account/models"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/audit"
	"cineclub/pkg/platform/httputil"
	"cineclub/pkg/platform/middleware/auth"
	"cineclub/pkg/platform/validation"
	"cineclub/pkg/requestcontext"
)

// Service defines the account operations exposed over HTTP.
type Service interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.AuthResult, error)
	Login(ctx context.Context, in models.LoginInput) (*models.AuthResult, error)
	Me(ctx context.Context, userID id.UserID) (*models.User, error)
	Activity(ctx context.Context, userID id.UserID, limit int) ([]audit.Event, error)
}

// Handler wires account endpoints to the account service.
type Handler struct {
	service Service
	tokens  auth.JWTValidator
	logger  *slog.Logger
}

func New(service Service, tokens auth.JWTValidator, logger *slog.Logger) *Handler {
	return &Handler{service: service, tokens: tokens, logger: logger}
}

// Register mounts /api/auth endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.HandleRegister)
		r.Post("/login", h.HandleLogin)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(h.tokens, h.logger))
			r.Get("/me", h.HandleMe)
			r.Get("/me/activity", h.HandleActivity)
		})
	})
}

// HandleRegister handles POST /api/auth/register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	in, ok := httputil.DecodeAndPrepare[models.RegisterInput](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.Register(ctx, *in)
	if err != nil {
		h.fail(ctx, w, "registration failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "account created", res)
}

// HandleLogin handles POST /api/auth/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	in, ok := httputil.DecodeAndPrepare[models.LoginInput](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.Login(ctx, *in)
	if err != nil {
		h.fail(ctx, w, "login failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "login successful", res)
}

// HandleMe handles GET /api/auth/me.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, err := h.service.Me(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.fail(ctx, w, "failed to load account", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "account retrieved", u)
}

// HandleActivity handles GET /api/auth/me/activity?limit.
func (h *Handler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := validation.DefaultPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = min(n, validation.MaxPageLimit)
	}

	events, err := h.service.Activity(ctx, requestcontext.UserID(ctx), limit)
	if err != nil {
		h.fail(ctx, w, "failed to load activity", err)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteSuccess(w, http.StatusOK, "activity retrieved", events)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	} else {
		h.logger.WarnContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	}
	httputil.WriteError(w, err)
}
