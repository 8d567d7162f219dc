package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cineclub/pkg/domain-errors"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
	Count int    `json:"count" validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantMsg string
	}{
		{"missing name", sample{Count: 1}, "name is required"},
		{"name too long", sample{Name: "abcdef", Count: 1}, "name must be at most 5 characters"},
		{"bad email", sample{Name: "a", Email: "nope", Count: 1}, "email must be a valid email address"},
		{"count not positive", sample{Name: "a"}, "count must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Equal(t, tt.wantMsg, dErrors.MessageOf(err))
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(sample{Name: "ok", Email: "a@b.co", Count: 3}))
	})
}
