package controllers

import (
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := ac.svc.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Login successful", result)
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := ac.svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "User registered successfully", user)
}
