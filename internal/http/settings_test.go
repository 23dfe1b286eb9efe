package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsPutAndGetRoundTrip(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	put := doRequest(router, "PUT", "/api/settings/theme", gin.H{"value": "dark"})
	assert.Equal(t, http.StatusOK, put.Code)

	get := doRequest(router, "GET", "/api/settings/theme", nil)
	assert.Equal(t, http.StatusOK, get.Code)

	var response settingResponse
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &response))
	assert.Equal(t, "theme", response.Key)
	assert.Equal(t, "dark", response.Value)
}

func TestGetSettingUnknownKeyReturnsNotFound(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(router, "GET", "/api/settings/no-such-key", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutSettingRequiresValue(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doRequest(router, "PUT", "/api/settings/theme", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSettingRemovesKey(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	put := doRequest(router, "PUT", "/api/settings/theme", gin.H{"value": "light"})
	require.Equal(t, http.StatusOK, put.Code)

	del := doRequest(router, "DELETE", "/api/settings/theme", nil)
	assert.Equal(t, http.StatusNoContent, del.Code)

	get := doRequest(router, "GET", "/api/settings/theme", nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}
