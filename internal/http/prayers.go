package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

type PrayersController struct {
	service *services.QueryService
}

func NewPrayersController(service *services.QueryService) *PrayersController {
	return &PrayersController{service: service}
}

// GetPrayers lists the catalog, filtered by the optional category, favorites
// and q (search) query parameters.
func (controller *PrayersController) GetPrayers(c *gin.Context) {
	var prayers any
	switch {
	case c.Query("q") != "":
		prayers = controller.service.SearchPrayers(c.Query("q"))
	case c.Query("category") != "":
		prayers = controller.service.GetPrayersByCategory(c.Query("category"))
	case c.Query("favorites") == "true":
		prayers = controller.service.GetFavoritePrayers()
	default:
		prayers = controller.service.GetAllPrayers()
	}
	c.IndentedJSON(http.StatusOK, gin.H{"prayers": prayers})
}

func (controller *PrayersController) GetPrayerByID(c *gin.Context) {
	prayer := controller.service.GetPrayerByID(c.Param("id"))
	if prayer == nil {
		respondNotFound(c, "prayer")
		return
	}
	c.IndentedJSON(http.StatusOK, prayer)
}

func (controller *PrayersController) GetPopularPrayers(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "invalid limit")
			return
		}
		limit = parsed
	}
	c.IndentedJSON(http.StatusOK, gin.H{"prayers": controller.service.GetPopularPrayers(limit)})
}

func (controller *PrayersController) GetCategories(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"categories": controller.service.GetCategories()})
}

type createPrayerRequest struct {
	Title       string   `json:"title" binding:"required"`
	Text        string   `json:"text" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
}

func (controller *PrayersController) CreatePrayer(c *gin.Context) {
	var req createPrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title, text and category are required")
		return
	}

	prayer := controller.service.AddPrayer(req.Title, req.Text, req.Description, req.Category, req.Language, req.Tags)
	if prayer == nil {
		respondBadRequest(c, "prayer could not be saved")
		return
	}
	c.IndentedJSON(http.StatusCreated, prayer)
}

func (controller *PrayersController) ToggleFavorite(c *gin.Context) {
	prayer := controller.service.ToggleFavorite(c.Param("id"))
	if prayer == nil {
		respondNotFound(c, "prayer")
		return
	}
	c.IndentedJSON(http.StatusOK, prayer)
}

// RecordPrayed bumps the usage counter; unknown ids still get a 204 because
// the operation is a best-effort signal, not a lookup.
func (controller *PrayersController) RecordPrayed(c *gin.Context) {
	controller.service.RecordPrayer(c.Param("id"))
	c.Status(http.StatusNoContent)
}
