package controllers

import (
	"net/http"
	"strconv"

	"TimeTrackGo/services"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{billing: billing}
}

// ProjectFinancials recomputes the project's financial summary. An optional
// value query parameter overrides the contracted value for this query.
func (bc *BillingController) ProjectFinancials(c *gin.Context) {
	var overrideValue *float64
	if v := c.Query("value"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value parameter"})
			return
		}
		overrideValue = &parsed
	}

	summary, err := bc.billing.ProjectFinancials(c.Request.Context(), c.Param("id"), overrideValue)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
