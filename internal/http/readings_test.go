package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

func TestGetTodaysReadingEndpoint(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(router, "GET", "/api/readings/today", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var reading entities.Reading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	assert.NotEmpty(t, reading.Date)
	assert.NotEmpty(t, reading.FirstReading.Citation)
	assert.NotEmpty(t, reading.Gospel.Citation)
}

func TestGetReadingByDateEndpoint(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(router, "GET", "/api/readings/2026-01-05", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var reading entities.Reading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	assert.Equal(t, "2026-01-05", reading.Date)
	assert.Equal(t, "St. John Neumann", reading.Saint)

	bad := doRequest(router, "GET", "/api/readings/not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}
