package controllers

import (
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type PersonController struct {
	svc *services.PersonService
}

func NewPersonController(svc *services.PersonService) *PersonController {
	return &PersonController{svc: svc}
}

type PersonPostRequest struct {
	services.PersonInput
	CreatedBy uint `json:"createdBy"`
}

type PersonPutRequest struct {
	services.PersonInput
	UpdatedBy uint `json:"updatedBy"`
}

func (pc *PersonController) Create(c *gin.Context) {
	var req PersonPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid person informations.")
		return
	}

	person, err := pc.svc.Create(req.PersonInput, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "New person added successfully!", person)
}

func (pc *PersonController) List(c *gin.Context) {
	people, err := pc.svc.List(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Persons retrieved successfully.", people)
}

func (pc *PersonController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	person, err := pc.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Person fetched successfully", person)
}

func (pc *PersonController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PersonPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid person informations.")
		return
	}

	person, err := pc.svc.Update(id, req.PersonInput, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Person updated successfully!", person)
}

func (pc *PersonController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	person, err := pc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Person deleted successfully (soft delete)", person)
}
