package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitledger/services"
)

type LedgerController struct {
	Tracker *services.Tracker
}

func NewLedgerController(t *services.Tracker) *LedgerController {
	return &LedgerController{Tracker: t}
}

// errStatus maps service errors onto HTTP responses: validation failures
// are the caller's fault, anything else is a storage problem.
func errStatus(c *gin.Context, err error) {
	if services.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (lc *LedgerController) Today(c *gin.Context) {
	rec, err := lc.Tracker.TodayRecord()
	if err != nil {
		errStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (lc *LedgerController) Stats(c *gin.Context) {
	stats, err := lc.Tracker.Stats()
	if err != nil {
		errStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (lc *LedgerController) Day(c *gin.Context) {
	rec, found, err := lc.Tracker.Record(c.Param("date"))
	if err != nil {
		errStatus(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no ledger for that date"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (lc *LedgerController) AddFood(c *gin.Context) {
	var req struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := lc.Tracker.AddFood(req.Name, req.Calories); err != nil {
		errStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (lc *LedgerController) AddActivity(c *gin.Context) {
	var req struct {
		Name            string  `json:"name"`
		Calories        float64 `json:"calories"`
		DurationMinutes float64 `json:"duration_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := lc.Tracker.AddActivity(req.Name, req.Calories, req.DurationMinutes); err != nil {
		errStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (lc *LedgerController) RemoveFood(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	if err := lc.Tracker.RemoveFood(index); err != nil {
		errStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (lc *LedgerController) RemoveActivity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	if err := lc.Tracker.RemoveActivity(index); err != nil {
		errStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (lc *LedgerController) RecentFoods(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", "0"))
	foods, err := lc.Tracker.RecentFoods(n)
	if err != nil {
		errStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (lc *LedgerController) RecentActivities(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", "0"))
	activities, err := lc.Tracker.RecentActivities(n)
	if err != nil {
		errStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (lc *LedgerController) UpdateGoal(c *gin.Context) {
	var req struct {
		Goal float64 `json:"goal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := lc.Tracker.UpdateGoal(req.Goal); err != nil {
		errStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Rollover lets the UI ask, typically on mount, whether the calendar day
// changed since it last looked.
func (lc *LedgerController) Rollover(c *gin.Context) {
	rolled, err := lc.Tracker.ResetIfNewDay()
	if err != nil {
		errStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rolled": rolled, "date": lc.Tracker.CurrentDateKey()})
}
