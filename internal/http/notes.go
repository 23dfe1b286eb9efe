package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

type NotesController struct {
	service *services.QueryService
}

func NewNotesController(service *services.QueryService) *NotesController {
	return &NotesController{service: service}
}

type createNoteRequest struct {
	ItemType string `json:"itemType" binding:"required"`
	ItemID   string `json:"itemId" binding:"required"`
	Note     string `json:"note" binding:"required"`
}

func (controller *NotesController) CreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "itemType, itemId and note are required")
		return
	}

	note := controller.service.AddNote(req.ItemType, req.ItemID, req.Note)
	if note == nil {
		respondBadRequest(c, "note could not be saved")
		return
	}
	c.IndentedJSON(http.StatusCreated, note)
}

func (controller *NotesController) GetNotes(c *gin.Context) {
	itemType := c.Query("itemType")
	itemID := c.Query("itemId")
	if itemType == "" || itemID == "" {
		respondBadRequest(c, "itemType and itemId query parameters are required")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"notes": controller.service.GetNotes(itemType, itemID)})
}

func (controller *NotesController) DeleteNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	controller.service.DeleteNote(id)
	c.Status(http.StatusNoContent)
}

type markFavoriteRequest struct {
	ItemType string `json:"itemType" binding:"required"`
	ItemID   string `json:"itemId" binding:"required"`
}

func (controller *NotesController) MarkFavorite(c *gin.Context) {
	var req markFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "itemType and itemId are required")
		return
	}

	favorite := controller.service.MarkFavorite(req.ItemType, req.ItemID)
	if favorite == nil {
		respondBadRequest(c, "favorite could not be saved")
		return
	}
	c.IndentedJSON(http.StatusCreated, favorite)
}

func (controller *NotesController) GetFavoriteMarks(c *gin.Context) {
	itemType := c.Query("itemType")
	if itemType == "" {
		respondBadRequest(c, "itemType query parameter is required")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"favorites": controller.service.GetFavoriteMarks(itemType)})
}
