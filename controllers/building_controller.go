package controllers

import (
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type BuildingController struct {
	svc *services.BuildingService
}

func NewBuildingController(svc *services.BuildingService) *BuildingController {
	return &BuildingController{svc: svc}
}

type BuildingPostRequest struct {
	BuildingName string `json:"buildingName"`
	Remarks      string `json:"remarks"`
	CreatedBy    uint   `json:"createdBy"`
}

type BuildingPutRequest struct {
	BuildingName string `json:"buildingName"`
	Remarks      string `json:"remarks"`
	UpdatedBy    uint   `json:"updatedBy"`
}

func (bc *BuildingController) Create(c *gin.Context) {
	var req BuildingPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid building informations.")
		return
	}

	building, err := bc.svc.Create(req.BuildingName, req.Remarks, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "Building created successfully", building)
}

func (bc *BuildingController) List(c *gin.Context) {
	buildings, err := bc.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Buildings retrieved successfully.", buildings)
}

func (bc *BuildingController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	building, err := bc.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Building fetched successfully", building)
}

func (bc *BuildingController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req BuildingPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid building informations.")
		return
	}

	building, err := bc.svc.Update(id, req.BuildingName, req.Remarks, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Building updated successfully", building)
}

func (bc *BuildingController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	building, err := bc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Building deleted successfully (soft delete)", building)
}
