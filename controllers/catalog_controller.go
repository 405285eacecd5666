package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitledger/services"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(cs *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: cs}
}

func (cc *CatalogController) Foods(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.SearchFoods(c.Query("q")))
}

func (cc *CatalogController) Activities(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.SearchActivities(c.Query("q")))
}

// Estimate converts a catalog activity plus duration into a calorie figure
// the client can pass straight to the activity log.
func (cc *CatalogController) Estimate(c *gin.Context) {
	name := c.Query("name")
	minutes, err := strconv.ParseFloat(c.DefaultQuery("minutes", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minutes must be a number"})
		return
	}
	calories, ok := cc.Catalog.EstimateActivity(name, minutes)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown activity or non-positive duration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "minutes": minutes, "calories": calories})
}

func (cc *CatalogController) Suggestions(c *gin.Context) {
	hour := time.Now().Hour()
	if h := c.Query("hour"); h != "" {
		parsed, err := strconv.Atoi(h)
		if err != nil || parsed < 0 || parsed > 23 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hour must be 0-23"})
			return
		}
		hour = parsed
	}
	window, items := cc.Catalog.Suggestions(hour)
	c.JSON(http.StatusOK, gin.H{"window": window, "items": items})
}
