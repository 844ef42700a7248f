package controllers

import (
	"errors"
	"io"
	"net/http"

	"TimeTrackGo/models"
	"TimeTrackGo/services"

	"github.com/gin-gonic/gin"
)

type TimerController struct {
	timers *services.TimerService
}

func NewTimerController(timers *services.TimerService) *TimerController {
	return &TimerController{timers: timers}
}

// Start opens a timer for the authenticated user. The body is optional, a
// bare POST starts an unassociated timer.
func (tc *TimerController) Start(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := tc.timers.Start(c.Request.Context(), uid, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewTimeEntryResponse(entry))
}

// Stop closes the running entry.
func (tc *TimerController) Stop(c *gin.Context) {
	uid := c.GetString("uid")

	entry, err := tc.timers.Stop(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTimeEntryResponse(entry))
}

// Finalize records the billable classification of a stopped entry.
func (tc *TimerController) Finalize(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := tc.timers.Finalize(c.Request.Context(), uid, c.Param("id"), *req.Billable)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTimeEntryResponse(entry))
}

// Running returns the user's open entry, or a null entry when idle. Clients
// derive elapsed time from the returned startTime.
func (tc *TimerController) Running(c *gin.Context) {
	uid := c.GetString("uid")

	entry, err := tc.timers.Running(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusOK, gin.H{"entry": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": models.NewTimeEntryResponse(entry)})
}
