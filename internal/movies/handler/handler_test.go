package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cineclub/internal/movies/handler/mocks"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/testutil"
)

type MovieHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  http.Handler
}

func TestMovieHandlerSuite(t *testing.T) {
	suite.Run(t, new(MovieHandlerSuite))
}

func (s *MovieHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	r := chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *MovieHandlerSuite) get(path string) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *MovieHandlerSuite) TestPopular() {
	s.Run("defaults to page 1 and embeds the upstream body", func() {
		s.service.EXPECT().Popular(gomock.Any(), 1).Return(json.RawMessage(`{"page":1,"results":[]}`), nil)

		rr := s.get("/api/movies/popular")

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Contains(rr.Body.String(), `"data":{"page":1,"results":[]}`)
	})

	s.Run("non-integer page", func() {
		rr := s.get("/api/movies/popular?page=two")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("upstream unavailable", func() {
		s.service.EXPECT().Popular(gomock.Any(), 3).
			Return(nil, dErrors.New(dErrors.CodeUpstream, "movie service is temporarily unavailable"))
		rr := s.get("/api/movies/popular?page=3")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadGateway, "upstream_unavailable")
	})
}

func (s *MovieHandlerSuite) TestSearch() {
	s.Run("passes query and page", func() {
		s.service.EXPECT().Search(gomock.Any(), "blade runner", 2).Return(json.RawMessage(`{"results":[]}`), nil)
		rr := s.get("/api/movies/search?query=blade+runner&page=2")
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("validation from the service", func() {
		s.service.EXPECT().Search(gomock.Any(), "", 1).Return(nil, dErrors.New(dErrors.CodeValidation, "query is required"))
		rr := s.get("/api/movies/search")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *MovieHandlerSuite) TestDetails() {
	s.Run("found", func() {
		s.service.EXPECT().Details(gomock.Any(), id.MovieID(603)).Return(json.RawMessage(`{"id":603}`), nil)
		rr := s.get("/api/movies/603")
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Contains(rr.Body.String(), `"data":{"id":603}`)
	})

	s.Run("bad id never reaches the service", func() {
		rr := s.get("/api/movies/abc")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
	})

	s.Run("not found", func() {
		s.service.EXPECT().Details(gomock.Any(), id.MovieID(9)).Return(nil, dErrors.New(dErrors.CodeNotFound, "movie not found"))
		rr := s.get("/api/movies/9")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("timeout", func() {
		s.service.EXPECT().Details(gomock.Any(), id.MovieID(10)).Return(nil, dErrors.New(dErrors.CodeTimeout, "movie service timed out"))
		rr := s.get("/api/movies/10")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusGatewayTimeout, "timeout")
	})

	s.Run("uncoded errors hide details", func() {
		s.service.EXPECT().Details(gomock.Any(), id.MovieID(11)).Return(nil, errors.New("dial tcp: secret host"))
		rr := s.get("/api/movies/11")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
		s.NotContains(rr.Body.String(), "secret host")
	})
}
