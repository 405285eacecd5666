package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitledger/services"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(a *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: a}
}

// Overview returns the trailing n-day trend (default 7, capped at 90).
func (ac *AnalyticsController) Overview(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || n < 1 || n > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be 1-90"})
		return
	}
	summary, err := ac.Analytics.Overview(n)
	if err != nil {
		errStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
