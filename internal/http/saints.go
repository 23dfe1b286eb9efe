package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

type SaintsController struct {
	service *services.QueryService
}

func NewSaintsController(service *services.QueryService) *SaintsController {
	return &SaintsController{service: service}
}

func (controller *SaintsController) GetSaints(c *gin.Context) {
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			respondBadRequest(c, "month must be 1-12")
			return
		}
		c.IndentedJSON(http.StatusOK, gin.H{"saints": controller.service.GetSaintsByMonth(month)})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"saints": controller.service.GetAllSaints()})
}

func (controller *SaintsController) GetSaintByID(c *gin.Context) {
	saint := controller.service.GetSaintByID(c.Param("id"))
	if saint == nil {
		respondNotFound(c, "saint")
		return
	}
	c.IndentedJSON(http.StatusOK, saint)
}

// GetSaintOfTheDay returns the saint for today or, with a date query
// parameter, for any YYYY-MM-DD date. Days without a dedicated saint get the
// generic All Saints record.
func (controller *SaintsController) GetSaintOfTheDay(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondBadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}
	c.IndentedJSON(http.StatusOK, controller.service.GetSaintOfTheDay(date))
}
