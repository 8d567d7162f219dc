package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/httputil"
	"cineclub/pkg/requestcontext"
)

// Service is the movie catalogue proxy.
type Service interface {
	Popular(ctx context.Context, page int) (json.RawMessage, error)
	Search(ctx context.Context, query string, page int) (json.RawMessage, error)
	Details(ctx context.Context, movieID id.MovieID) (json.RawMessage, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public /api/movies endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/popular", h.HandlePopular)
		r.Get("/search", h.HandleSearch)
		r.Get("/{movieID}", h.HandleDetails)
	})
}

// HandlePopular handles GET /api/movies/popular?page.
func (h *Handler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := pageParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	body, err := h.service.Popular(ctx, page)
	if err != nil {
		h.fail(ctx, w, "failed to load popular movies", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "movies retrieved", body)
}

// HandleSearch handles GET /api/movies/search?query&page.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := pageParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	body, err := h.service.Search(ctx, r.URL.Query().Get("query"), page)
	if err != nil {
		h.fail(ctx, w, "movie search failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "movies retrieved", body)
}

// HandleDetails handles GET /api/movies/{movieID}.
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID, err := id.ParseMovieID(chi.URLParam(r, "movieID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	body, err := h.service.Details(ctx, movieID)
	if err != nil {
		h.fail(ctx, w, "failed to load movie", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "movie retrieved", body)
}

func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "page must be an integer")
	}
	return n, nil
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	} else {
		h.logger.WarnContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	}
	httputil.WriteError(w, err)
}
