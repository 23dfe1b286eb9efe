package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/database/settings"
)

type SettingsController struct {
	settings *settings.Repository
}

func NewSettingsController(settingsRepo *settings.Repository) *SettingsController {
	return &SettingsController{settings: settingsRepo}
}

type settingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (controller *SettingsController) GetSetting(c *gin.Context) {
	setting, err := controller.settings.GetSetting(c.Param("key"))
	if err != nil {
		respondNotFound(c, "setting")
		return
	}
	c.IndentedJSON(http.StatusOK, settingResponse{Key: setting.Key, Value: setting.Value})
}

type putSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func (controller *SettingsController) PutSetting(c *gin.Context) {
	var req putSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "value is required")
		return
	}

	key := c.Param("key")
	if err := controller.settings.SetSetting(key, req.Value); err != nil {
		respondBadRequest(c, "setting could not be saved")
		return
	}
	c.IndentedJSON(http.StatusOK, settingResponse{Key: key, Value: req.Value})
}

func (controller *SettingsController) DeleteSetting(c *gin.Context) {
	if err := controller.settings.DeleteSetting(c.Param("key")); err != nil {
		respondBadRequest(c, "setting could not be deleted")
		return
	}
	c.Status(http.StatusNoContent)
}
