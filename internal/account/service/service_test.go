package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,TokenIssuer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cineclub/internal/account/models"
	"cineclub/internal/account/secrets"
	"cineclub/internal/account/service/mocks"
	"cineclub/internal/account/store"
	jwttoken "cineclub/internal/jwt_token"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/audit"
	auditmemory "cineclub/pkg/platform/audit/store/memory"
	"cineclub/pkg/requestcontext"
)

type countingMetrics struct{ users int }

func (c *countingMetrics) IncrementUsersCreated() { c.users++ }

type AccountServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *store.InMemory
	tokens  *jwttoken.JWTService
	audit   *auditmemory.InMemoryStore
	metrics *countingMetrics
	service *Service
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))
	s.store = store.NewInMemory()
	s.tokens = jwttoken.NewJWTService("account-test-signing-key", "cineclub", "cineclub-api", time.Hour)
	s.audit = auditmemory.NewInMemoryStore()
	s.metrics = &countingMetrics{}
	s.service = New(s.store, s.tokens,
		WithAuditPublisher(s.audit),
		WithActivityLog(s.audit),
		WithMetrics(s.metrics),
	)
}

func (s *AccountServiceSuite) register(username, email string) *models.AuthResult {
	res, err := s.service.Register(s.ctx, models.RegisterInput{Username: username, Email: email, Password: "popcorn-42"})
	s.Require().NoError(err)
	return res
}

func (s *AccountServiceSuite) TestRegister() {
	s.Run("creates user and issues a token", func() {
		res := s.register(" alice ", "Alice@Example.com")
		s.Equal("alice", res.User.Username)
		s.Equal("alice@example.com", res.User.Email)
		s.NotEqual("popcorn-42", res.User.PasswordHash)
		s.Equal("Bearer", res.TokenType)

		claims, err := s.tokens.ValidateToken(res.AccessToken)
		s.Require().NoError(err)
		s.Equal(res.User.ID.String(), claims.UserID)
		s.Equal(1, s.metrics.users)
	})

	s.Run("username conflict ignores case", func() {
		_, err := s.service.Register(s.ctx, models.RegisterInput{Username: "ALICE", Email: "new@example.com", Password: "popcorn-42"})
		s.Require().Error(err)
		s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
		s.Equal("username is already taken", dErrors.MessageOf(err))
	})

	s.Run("email conflict", func() {
		_, err := s.service.Register(s.ctx, models.RegisterInput{Username: "alice2", Email: "ALICE@example.com", Password: "popcorn-42"})
		s.Require().Error(err)
		s.Equal("email is already registered", dErrors.MessageOf(err))
	})

	s.Run("validation", func() {
		cases := map[string]models.RegisterInput{
			"short username":  {Username: "al", Email: "x@example.com", Password: "popcorn-42"},
			"symbols":         {Username: "al ice", Email: "x@example.com", Password: "popcorn-42"},
			"bad email":       {Username: "carol", Email: "not-an-email", Password: "popcorn-42"},
			"short password":  {Username: "carol", Email: "c@example.com", Password: "short"},
			"password > 72 B": {Username: "carol", Email: "c@example.com", Password: strings.Repeat("é", 37)},
		}
		for name, in := range cases {
			_, err := s.service.Register(s.ctx, in)
			s.Require().Error(err, name)
			s.Equal(dErrors.CodeValidation, dErrors.CodeOf(err), name)
		}
	})
}

func (s *AccountServiceSuite) TestLogin() {
	registered := s.register("bob", "bob@example.com")

	s.Run("success", func() {
		res, err := s.service.Login(s.ctx, models.LoginInput{Email: " BOB@example.com ", Password: "popcorn-42"})
		s.Require().NoError(err)
		s.Equal(registered.User.ID, res.User.ID)
		s.NotEmpty(res.AccessToken)
	})

	s.Run("wrong password and unknown email look the same", func() {
		_, wrong := s.service.Login(s.ctx, models.LoginInput{Email: "bob@example.com", Password: "nope-nope"})
		_, unknown := s.service.Login(s.ctx, models.LoginInput{Email: "ghost@example.com", Password: "nope-nope"})
		s.Require().Error(wrong)
		s.Require().Error(unknown)
		s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(wrong))
		s.Equal(dErrors.MessageOf(wrong), dErrors.MessageOf(unknown))
	})

	s.Run("audit trail", func() {
		events, err := s.service.Activity(s.ctx, registered.User.ID, 10)
		s.Require().NoError(err)
		actions := make([]string, len(events))
		for i, e := range events {
			actions[i] = e.Action
		}
		s.ElementsMatch([]string{
			string(audit.EventUserRegistered),
			string(audit.EventLoginSucceeded),
			string(audit.EventLoginFailed),
		}, actions)
	})
}

func (s *AccountServiceSuite) TestMe() {
	res := s.register("carol", "carol@example.com")

	u, err := s.service.Me(s.ctx, res.User.ID)
	s.Require().NoError(err)
	s.Equal("carol", u.Username)

	_, err = s.service.Me(s.ctx, id.NewUserID())
	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))

	_, err = s.service.Me(s.ctx, id.UserID{})
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func (s *AccountServiceSuite) TestActivityWithoutLog() {
	svc := New(s.store, s.tokens)
	events, err := svc.Activity(s.ctx, id.NewUserID(), 5)
	s.Require().NoError(err)
	s.Empty(events)
}

func TestRegisterStoreFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockStore(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	svc := New(users, tokens)

	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	tokens.EXPECT().GenerateAccessToken(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Register(context.Background(), models.RegisterInput{Username: "dave", Email: "d@example.com", Password: "popcorn-42"})
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(err))
}

func TestLoginTokenFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockStore(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)
	svc := New(users, tokens)

	hashed, err := secrets.Hash("popcorn-42")
	require.NoError(t, err)
	u, err := models.NewUser(id.NewUserID(), "erin", "e@example.com", hashed, time.Now())
	require.NoError(t, err)

	users.EXPECT().FindByEmail(gomock.Any(), "e@example.com").Return(u, nil)
	tokens.EXPECT().GenerateAccessToken(u.ID, "erin").Return("", time.Time{}, errors.New("key unavailable"))

	_, err = svc.Login(context.Background(), models.LoginInput{Email: "e@example.com", Password: "popcorn-42"})
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(err))
}
