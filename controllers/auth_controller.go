package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitledger/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(a *services.AuthService) *AuthController {
	return &AuthController{Auth: a}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.Auth.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
