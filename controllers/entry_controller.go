package controllers

import (
	"net/http"

	"TimeTrackGo/models"
	"TimeTrackGo/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	entries *services.EntryService
}

func NewEntryController(entries *services.EntryService) *EntryController {
	return &EntryController{entries: entries}
}

// Create stores a manual, already-closed entry.
func (ec *EntryController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.entries.CreateManual(c.Request.Context(), uid, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewTimeEntryResponse(entry))
}

// Update fully replaces the mutable fields of a closed entry.
func (ec *EntryController) Update(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.entries.UpdateManual(c.Request.Context(), uid, c.Param("id"), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTimeEntryResponse(entry))
}

// List returns entries matching the query filters.
func (ec *EntryController) List(c *gin.Context) {
	var filter models.EntryFilter
	if v := c.Query("userId"); v != "" {
		filter.UserID = &v
	}
	if v := c.Query("taskId"); v != "" {
		filter.TaskID = &v
	}
	if v := c.Query("projectId"); v != "" {
		filter.ProjectID = &v
	}
	if v := c.Query("campaignId"); v != "" {
		filter.CampaignID = &v
	}

	entries, err := ec.entries.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": models.NewTimeEntryResponses(entries)})
}
