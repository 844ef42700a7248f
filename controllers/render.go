package controllers

import (
	"errors"
	"net/http"

	"TimeTrackGo/config"
	"TimeTrackGo/models"

	"github.com/gin-gonic/gin"
)

// abortWithError maps a service error to its HTTP response. Domain errors
// carry their own status; anything else is a 500 and gets logged.
func abortWithError(c *gin.Context, err error) {
	var derr *models.Error
	if errors.As(err, &derr) {
		body := gin.H{"error": derr.Message}
		if derr.Field != "" {
			body["field"] = derr.Field
		}
		c.JSON(derr.HTTPStatus(), body)
		return
	}

	config.Logger.Errorw("request failed",
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
