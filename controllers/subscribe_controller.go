package controllers

import (
	"io"

	"TimeTrackGo/services"

	"github.com/gin-gonic/gin"
)

type SubscribeController struct {
	notifier services.Notifier
}

func NewSubscribeController(notifier services.Notifier) *SubscribeController {
	return &SubscribeController{notifier: notifier}
}

// Subscribe streams change events for one scope ("user:{id}", "task:{id}",
// "campaign:{id}" or "project:{id}") as server-sent events. Events are
// re-fetch hints only; delivery is at-least-once and unordered.
func (sc *SubscribeController) Subscribe(c *gin.Context) {
	channel, err := services.ParseScope(c.Query("scope"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	events, err := sc.notifier.Subscribe(c.Request.Context(), channel)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
