package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cineclub/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "internal_error", body["error"])
		_, ok := body["message"]
		assert.False(t, ok, "message must be omitted for internal errors")
	})

	t.Run("conflict includes message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeConflict, "already a member"))

		require.Equal(t, http.StatusConflict, w.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "conflict", body["error"])
		assert.Equal(t, "already a member", body["message"])
	})
}

func TestWritePage(t *testing.T) {
	w := httptest.NewRecorder()
	WritePage(w, "groups", []string{"a"}, NewPagination(2, 10, 21))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success    bool       `json:"success"`
		Pagination Pagination `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 21, TotalPages: 3}, body.Pagination)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
	assert.Equal(t, 1, NewPagination(1, 20, 20).TotalPages)
	assert.Equal(t, 2, NewPagination(1, 20, 21).TotalPages)
}
