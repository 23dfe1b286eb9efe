// Package http exposes the catalog, readings, saints, rosary and user-data
// operations over a JSON API.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/database"
	"github.com/kiplangat-dev/catholicprayer/internal/database/settings"
	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(service *services.QueryService, settingsRepo *settings.Repository, db *database.Database) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	prayersController := NewPrayersController(service)
	readingsController := NewReadingsController(service)
	saintsController := NewSaintsController(service)
	rosaryController := NewRosaryController(service)
	notesController := NewNotesController(service)
	statsController := NewStatsController(service)
	settingsController := NewSettingsController(settingsRepo)
	healthController := NewHealthController(db)

	router.GET("/health", healthController.Status)

	api := router.Group("/api")
	{
		api.GET("/prayers", prayersController.GetPrayers)
		api.POST("/prayers", prayersController.CreatePrayer)
		api.GET("/prayers/popular", prayersController.GetPopularPrayers)
		api.GET("/prayers/categories", prayersController.GetCategories)
		api.GET("/prayers/:id", prayersController.GetPrayerByID)
		api.POST("/prayers/:id/favorite", prayersController.ToggleFavorite)
		api.POST("/prayers/:id/prayed", prayersController.RecordPrayed)

		api.GET("/readings/today", readingsController.GetTodaysReading)
		api.GET("/readings/:date", readingsController.GetReadingByDate)

		api.GET("/saints", saintsController.GetSaints)
		api.GET("/saints/today", saintsController.GetSaintOfTheDay)
		api.GET("/saints/:id", saintsController.GetSaintByID)

		api.GET("/rosary", rosaryController.GetAllMysteries)
		api.GET("/rosary/today", rosaryController.GetTodaysRosary)
		api.GET("/rosary/:type", rosaryController.GetMysteriesByType)

		api.POST("/notes", notesController.CreateNote)
		api.GET("/notes", notesController.GetNotes)
		api.DELETE("/notes/:id", notesController.DeleteNote)
		api.POST("/favorites", notesController.MarkFavorite)
		api.GET("/favorites", notesController.GetFavoriteMarks)

		api.GET("/settings/:key", settingsController.GetSetting)
		api.PUT("/settings/:key", settingsController.PutSetting)
		api.DELETE("/settings/:key", settingsController.DeleteSetting)

		api.GET("/stats", statsController.GetStats)
	}

	return router
}
