package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cineclub/internal/group/models"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/validation"
)

// AddContentRequest is the body of POST /api/groups/{groupID}/movies.
type AddContentRequest struct {
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
}

// Validate implements httputil.Validatable.
func (r *AddContentRequest) Validate() error {
	return validation.Struct(r)
}

// parsePage reads ?page and ?limit. Missing values fall back to defaults;
// values that are present must be integers.
func parsePage(r *http.Request) (models.Page, error) {
	var p models.Page
	q := r.URL.Query()
	for _, f := range []struct {
		name string
		dst  *int
	}{{"page", &p.Page}, {"limit", &p.Limit}} {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.Page{}, dErrors.New(dErrors.CodeBadRequest, f.name+" must be an integer")
		}
		*f.dst = n
	}
	p.Normalize()
	return p, nil
}

func groupIDParam(r *http.Request) (id.GroupID, error) {
	return id.ParseGroupID(chi.URLParam(r, "groupID"))
}

func requestIDParam(r *http.Request) (id.JoinRequestID, error) {
	return id.ParseJoinRequestID(chi.URLParam(r, "requestID"))
}
