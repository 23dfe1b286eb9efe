package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

type RosaryController struct {
	service *services.QueryService
}

func NewRosaryController(service *services.QueryService) *RosaryController {
	return &RosaryController{service: service}
}

// GetAllMysteries returns the complete 20-mystery set.
func (controller *RosaryController) GetAllMysteries(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"mysteries": controller.service.GetAllRosaryMysteries()})
}

// GetTodaysRosary returns the mystery set for today's weekday.
func (controller *RosaryController) GetTodaysRosary(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, controller.service.GetTodaysRosary())
}

// GetMysteriesByType returns the five mysteries of one type.
func (controller *RosaryController) GetMysteriesByType(c *gin.Context) {
	mysteryType := entities.MysteryType(c.Param("type"))
	switch mysteryType {
	case entities.MysteryTypeJoyful, entities.MysteryTypeSorrowful,
		entities.MysteryTypeGlorious, entities.MysteryTypeLuminous:
	default:
		respondBadRequest(c, "type must be joyful, sorrowful, glorious or luminous")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"mysteryType": mysteryType,
		"mysteries":   controller.service.GetRosaryMysteries(mysteryType),
	})
}
