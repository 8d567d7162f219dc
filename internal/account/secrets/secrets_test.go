package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cineclub/pkg/domain-errors"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	require.NoError(t, Verify("correct horse", hash))

	err = Verify("battery staple", hash)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestHashRejectsEmptyAndLong(t *testing.T) {
	_, err := Hash("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

	_, err = Hash(strings.Repeat("p", 73))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestVerifyAbsentAlwaysFails(t *testing.T) {
	err := VerifyAbsent("anything")
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", dErrors.MessageOf(err))
}
