package controllers

import (
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomDetailsController struct {
	svc *services.RoomDetailsService
}

func NewRoomDetailsController(svc *services.RoomDetailsService) *RoomDetailsController {
	return &RoomDetailsController{svc: svc}
}

type RoomDetailsPostRequest struct {
	services.RoomDetailsInput
	CreatedBy uint `json:"createdBy"`
}

type RoomDetailsPutRequest struct {
	services.RoomDetailsInput
	UpdatedBy uint `json:"updatedBy"`
}

func (dc *RoomDetailsController) Create(c *gin.Context) {
	var req RoomDetailsPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room details.")
		return
	}

	details, err := dc.svc.Create(req.RoomDetailsInput, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "Room details created successfully!", details)
}

func (dc *RoomDetailsController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RoomDetailsPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room details.")
		return
	}

	details, err := dc.svc.Update(id, req.RoomDetailsInput, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room details updated successfully!", details)
}

func (dc *RoomDetailsController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	details, err := dc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room details deleted successfully (soft delete)", details)
}

func (dc *RoomDetailsController) GetAll(c *gin.Context) {
	details, err := dc.svc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "All room details retrieved successfully.", details)
}

// GetByCriteria narrows room details by any combination of userId, buildingId,
// floorId and roomId query parameters.
func (dc *RoomDetailsController) GetByCriteria(c *gin.Context) {
	details, err := dc.svc.GetByCriteria(
		parseUintQuery(c, "userId"),
		parseUintQuery(c, "buildingId"),
		parseUintQuery(c, "floorId"),
		parseUintQuery(c, "roomId"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room details retrieved successfully.", details)
}
