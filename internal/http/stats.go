package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

type StatsController struct {
	service *services.QueryService
}

func NewStatsController(service *services.QueryService) *StatsController {
	return &StatsController{service: service}
}

func (controller *StatsController) GetStats(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, controller.service.GetStats())
}
