package controllers

import (
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type FloorController struct {
	svc *services.FloorService
}

func NewFloorController(svc *services.FloorService) *FloorController {
	return &FloorController{svc: svc}
}

type FloorPostRequest struct {
	FloorName  string `json:"floorName"`
	BuildingID uint   `json:"buildingId"`
	Remarks    string `json:"remarks"`
	CreatedBy  uint   `json:"createdBy"`
}

type FloorPutRequest struct {
	FloorName  string `json:"floorName"`
	BuildingID uint   `json:"buildingId"`
	Remarks    string `json:"remarks"`
	UpdatedBy  uint   `json:"updatedBy"`
}

func (fc *FloorController) Create(c *gin.Context) {
	var req FloorPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid floor informations.")
		return
	}

	floor, err := fc.svc.Create(req.FloorName, req.BuildingID, req.Remarks, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "Floor created successfully", floor)
}

func (fc *FloorController) List(c *gin.Context) {
	floors, err := fc.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Floors retrieved successfully.", floors)
}

func (fc *FloorController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	floor, err := fc.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Floor fetched successfully", floor)
}

func (fc *FloorController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req FloorPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid floor informations.")
		return
	}

	floor, err := fc.svc.Update(id, req.FloorName, req.BuildingID, req.Remarks, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Floor updated successfully", floor)
}

func (fc *FloorController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	floor, err := fc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Floor deleted successfully (soft delete)", floor)
}
