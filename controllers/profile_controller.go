package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitledger/models"
	"fitledger/services"
)

type ProfileController struct {
	Profile *services.ProfileService
}

func NewProfileController(p *services.ProfileService) *ProfileController {
	return &ProfileController{Profile: p}
}

func (pc *ProfileController) Get(c *gin.Context) {
	summary, found, err := pc.Profile.Summary()
	if err != nil {
		errStatus(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not set up yet"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (pc *ProfileController) Update(c *gin.Context) {
	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := pc.Profile.Update(req); err != nil {
		errStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
