package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

func TestRegisterInput(t *testing.T) {
	in := RegisterInput{Username: "  neo ", Email: " Neo@Matrix.IO ", Password: "whiterabbit"}
	in.Normalize()
	assert.Equal(t, "neo", in.Username)
	assert.Equal(t, "neo@matrix.io", in.Email)
	require.NoError(t, in.Validate())

	in.Username = "n"
	err := in.Validate()
	require.Error(t, err)
	assert.Equal(t, "username must be at least 3 characters", dErrors.MessageOf(err))
}

func TestLoginInputRequiresPassword(t *testing.T) {
	in := LoginInput{Email: "neo@matrix.io"}
	err := in.Validate()
	require.Error(t, err)
	assert.Equal(t, "password is required", dErrors.MessageOf(err))
}

func TestNewUserInvariants(t *testing.T) {
	_, err := NewUser(id.UserID{}, "neo", "neo@matrix.io", "hash", time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewUser(id.NewUserID(), "neo", "neo@matrix.io", "", time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestUserJSONOmitsHash(t *testing.T) {
	u, err := NewUser(id.NewUserID(), "neo", "neo@matrix.io", "$2a$10$secret", time.Now())
	require.NoError(t, err)
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}
