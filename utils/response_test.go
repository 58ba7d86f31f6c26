package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, 200, M{"total": 12})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12.0, body["total"])
}

func TestRespondWithErrorHidesDetailByDefault(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	rec := httptest.NewRecorder()
	RespondWithError(rec, 500, "Failed to fetch recipes", errors.New("dial tcp: connection refused"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch recipes", body["message"])
	assert.Equal(t, map[string]interface{}{}, body["error"])
}

func TestRespondWithErrorShowsDetailInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	rec := httptest.NewRecorder()
	RespondWithError(rec, 500, "Failed to fetch recipes", errors.New("dial tcp: connection refused"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "dial tcp: connection refused", body["error"])
}
