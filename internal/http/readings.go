package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

type ReadingsController struct {
	service *services.QueryService
}

func NewReadingsController(service *services.QueryService) *ReadingsController {
	return &ReadingsController{service: service}
}

// GetTodaysReading returns the readings for the current date, fetching and
// caching them on a cold cache.
func (controller *ReadingsController) GetTodaysReading(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, controller.service.GetTodaysReading(c.Request.Context()))
}

// GetReadingByDate returns the readings for a YYYY-MM-DD date.
func (controller *ReadingsController) GetReadingByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		respondBadRequest(c, "date must be YYYY-MM-DD")
		return
	}
	c.IndentedJSON(http.StatusOK, controller.service.GetDailyReading(c.Request.Context(), date))
}
