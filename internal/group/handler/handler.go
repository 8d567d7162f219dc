package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cineclub/internal/group/models"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/httputil"
	"cineclub/pkg/platform/middleware/auth"
	"cineclub/pkg/requestcontext"
)

// Service defines the group operations exposed over HTTP.
type Service interface {
	CreateGroup(ctx context.Context, principal id.UserID, in models.CreateGroupInput) (*models.Group, error)
	UpdateGroup(ctx context.Context, principal id.UserID, groupID id.GroupID, in models.UpdateGroupInput) (*models.Group, error)
	DeleteGroup(ctx context.Context, principal id.UserID, groupID id.GroupID) error
	AddContent(ctx context.Context, principal id.UserID, groupID id.GroupID, movieID id.MovieID) (*models.GroupContent, error)
	RemoveContent(ctx context.Context, principal id.UserID, groupID id.GroupID, movieID id.MovieID) error
	RemoveMember(ctx context.Context, principal id.UserID, groupID id.GroupID, targetUserID id.UserID) error
	LeaveGroup(ctx context.Context, principal id.UserID, groupID id.GroupID) error
	ListGroups(ctx context.Context, viewer id.UserID, page models.Page) (*models.GroupPage, error)
	GetGroupDetails(ctx context.Context, viewer id.UserID, groupID id.GroupID) (*models.GroupDetails, error)
	RequestToJoin(ctx context.Context, principal id.UserID, groupID id.GroupID) (*models.JoinRequest, error)
	ApproveRequest(ctx context.Context, owner id.UserID, groupID id.GroupID, requestID id.JoinRequestID) (*models.JoinRequest, error)
	RejectRequest(ctx context.Context, owner id.UserID, groupID id.GroupID, requestID id.JoinRequestID) (*models.JoinRequest, error)
	ListPendingForGroup(ctx context.Context, owner id.UserID, groupID id.GroupID) ([]*models.PendingJoinRequest, error)
	ListPendingForOwner(ctx context.Context, principal id.UserID) ([]*models.PendingJoinRequest, error)
}

// Handler wires group endpoints to the group service.
type Handler struct {
	service Service
	tokens  auth.JWTValidator
	logger  *slog.Logger
}

// New constructs a group handler. tokens validates bearer tokens for both
// required and optional authentication.
func New(service Service, tokens auth.JWTValidator, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

// Register mounts group and notification endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	optional := auth.OptionalAuth(h.tokens, h.logger)
	required := auth.RequireAuth(h.tokens, h.logger)

	r.Route("/api/groups", func(r chi.Router) {
		r.With(optional).Get("/", h.HandleListGroups)
		r.With(optional).Get("/{groupID}", h.HandleGetGroup)

		r.Group(func(r chi.Router) {
			r.Use(required)
			r.Post("/", h.HandleCreateGroup)
			r.Put("/{groupID}", h.HandleUpdateGroup)
			r.Delete("/{groupID}", h.HandleDeleteGroup)
			r.Post("/{groupID}/movies", h.HandleAddContent)
			r.Delete("/{groupID}/movies/{movieID}", h.HandleRemoveContent)
			r.Delete("/{groupID}/members/{userID}", h.HandleRemoveMember)
			r.Post("/{groupID}/leave", h.HandleLeaveGroup)
			r.Post("/{groupID}/join-requests", h.HandleRequestToJoin)
			r.Get("/{groupID}/join-requests", h.HandleListPendingForGroup)
			r.Post("/{groupID}/join-requests/{requestID}/approve", h.HandleApproveRequest)
			r.Post("/{groupID}/join-requests/{requestID}/reject", h.HandleRejectRequest)
		})
	})
	r.With(required).Get("/api/notifications/join-requests", h.HandleListNotifications)
}

// HandleListGroups handles GET /api/groups.
func (h *Handler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.ListGroups(ctx, requestcontext.UserID(ctx), page)
	if err != nil {
		h.fail(ctx, w, "failed to list groups", err)
		return
	}
	httputil.WritePage(w, "groups retrieved", nonNil(result.Groups),
		httputil.NewPagination(result.Page, result.Limit, result.Total))
}

// HandleGetGroup handles GET /api/groups/{groupID}.
func (h *Handler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	details, err := h.service.GetGroupDetails(ctx, requestcontext.UserID(ctx), groupID)
	if err != nil {
		h.fail(ctx, w, "failed to load group", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "group retrieved", details)
}

// HandleCreateGroup handles POST /api/groups.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	in, ok := httputil.DecodeAndPrepare[models.CreateGroupInput](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	g, err := h.service.CreateGroup(ctx, requestcontext.UserID(ctx), *in)
	if err != nil {
		h.fail(ctx, w, "failed to create group", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "group created", g)
}

// HandleUpdateGroup handles PUT /api/groups/{groupID}. Field validation is
// left to the service so that ownership is checked first.
func (h *Handler) HandleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	in, ok := httputil.DecodeJSON[models.UpdateGroupInput](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	g, err := h.service.UpdateGroup(ctx, requestcontext.UserID(ctx), groupID, *in)
	if err != nil {
		h.fail(ctx, w, "failed to update group", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "group updated", g)
}

// HandleDeleteGroup handles DELETE /api/groups/{groupID}.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.DeleteGroup(ctx, requestcontext.UserID(ctx), groupID); err != nil {
		h.fail(ctx, w, "failed to delete group", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "group deleted", nil)
}

// HandleAddContent handles POST /api/groups/{groupID}/movies.
func (h *Handler) HandleAddContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[AddContentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	content, err := h.service.AddContent(ctx, requestcontext.UserID(ctx), groupID, id.MovieID(req.MovieID))
	if err != nil {
		h.fail(ctx, w, "failed to add movie", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "movie added to group", content)
}

// HandleRemoveContent handles DELETE /api/groups/{groupID}/movies/{movieID}.
func (h *Handler) HandleRemoveContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	movieID, err := id.ParseMovieID(chi.URLParam(r, "movieID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.RemoveContent(ctx, requestcontext.UserID(ctx), groupID, movieID); err != nil {
		h.fail(ctx, w, "failed to remove movie", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "movie removed from group", nil)
}

// HandleRemoveMember handles DELETE /api/groups/{groupID}/members/{userID}.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	target, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.RemoveMember(ctx, requestcontext.UserID(ctx), groupID, target); err != nil {
		h.fail(ctx, w, "failed to remove member", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "member removed", nil)
}

// HandleLeaveGroup handles POST /api/groups/{groupID}/leave.
func (h *Handler) HandleLeaveGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.LeaveGroup(ctx, requestcontext.UserID(ctx), groupID); err != nil {
		h.fail(ctx, w, "failed to leave group", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "left group", nil)
}

// HandleRequestToJoin handles POST /api/groups/{groupID}/join-requests.
func (h *Handler) HandleRequestToJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, err := h.service.RequestToJoin(ctx, requestcontext.UserID(ctx), groupID)
	if err != nil {
		h.fail(ctx, w, "failed to request to join", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "join request submitted", req)
}

// HandleListPendingForGroup handles GET /api/groups/{groupID}/join-requests.
func (h *Handler) HandleListPendingForGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	pending, err := h.service.ListPendingForGroup(ctx, requestcontext.UserID(ctx), groupID)
	if err != nil {
		h.fail(ctx, w, "failed to list join requests", err, "group_id", groupID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "join requests retrieved", nonNil(pending))
}

// HandleApproveRequest handles POST .../join-requests/{requestID}/approve.
func (h *Handler) HandleApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.service.ApproveRequest, "join request approved")
}

// HandleRejectRequest handles POST .../join-requests/{requestID}/reject.
func (h *Handler) HandleRejectRequest(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.service.RejectRequest, "join request rejected")
}

type resolveFunc func(ctx context.Context, owner id.UserID, groupID id.GroupID, requestID id.JoinRequestID) (*models.JoinRequest, error)

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, fn resolveFunc, message string) {
	ctx := r.Context()
	groupID, err := groupIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	requestID, err := requestIDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resolved, err := fn(ctx, requestcontext.UserID(ctx), groupID, requestID)
	if err != nil {
		h.fail(ctx, w, "failed to resolve join request", err, "group_id", groupID, "join_request_id", requestID)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, message, resolved)
}

// HandleListNotifications handles GET /api/notifications/join-requests.
func (h *Handler) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pending, err := h.service.ListPendingForOwner(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.fail(ctx, w, "failed to list notifications", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "notifications retrieved", nonNil(pending))
}

// fail logs err at a level matching its code and writes the envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "request_id", requestcontext.RequestID(ctx), "error", err)
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

// nonNil renders empty lists as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
