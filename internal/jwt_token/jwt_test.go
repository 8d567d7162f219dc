package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

const signingKey = "test-signing-key-0123456789"

var userID = id.NewUserID()

func newService(ttl time.Duration) *JWTService {
	return NewJWTService(signingKey, "test-issuer", "test-audience", ttl)
}

func Test_GenerateAccessToken(t *testing.T) {
	svc := newService(time.Hour)
	token, expiresAt, err := svc.GenerateAccessToken(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func Test_ValidateToken_InvalidToken(t *testing.T) {
	_, err := newService(time.Hour).ValidateToken("invalid-token-string")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Equal(t, "invalid token", dErrors.MessageOf(err))
}

func Test_ValidateToken_ExpiredToken(t *testing.T) {
	svc := newService(-time.Hour)
	token, _, err := svc.GenerateAccessToken(userID, "alice")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "token has expired", dErrors.MessageOf(err))
}

func Test_ValidateToken_WrongAudienceOrIssuer(t *testing.T) {
	token, _, err := NewJWTService(signingKey, "other-issuer", "test-audience", time.Hour).GenerateAccessToken(userID, "")
	require.NoError(t, err)
	_, err = newService(time.Hour).ValidateToken(token)
	assert.Error(t, err)

	token, _, err = NewJWTService(signingKey, "test-issuer", "other-audience", time.Hour).GenerateAccessToken(userID, "")
	require.NoError(t, err)
	_, err = newService(time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func Test_ValidateToken_WrongKey(t *testing.T) {
	token, _, err := NewJWTService("another-signing-key-987654", "test-issuer", "test-audience", time.Hour).GenerateAccessToken(userID, "")
	require.NoError(t, err)
	_, err = newService(time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func Test_ValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Audience:  []string{"test-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newService(time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func Test_ValidateToken_RejectsNonUUIDSubject(t *testing.T) {
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Audience:  []string{"test-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := forged.SignedString([]byte(signingKey))
	require.NoError(t, err)

	_, err = newService(time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func Test_Adapter(t *testing.T) {
	svc := newService(time.Hour)
	token, _, err := svc.GenerateAccessToken(userID, "alice")
	require.NoError(t, err)

	claims, err := NewJWTServiceAdapter(svc).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.NotEmpty(t, claims.JTI)
}
