package controllers

import (
	"net/http"
	"strconv"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	svc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{svc: svc}
}

type RoomPostRequest struct {
	services.RoomInput
	CreatedBy uint `json:"createdBy"`
}

type RoomPutRequest struct {
	services.RoomInput
	UpdatedBy uint `json:"updatedBy"`
}

func (rc *RoomController) Create(c *gin.Context) {
	var req RoomPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room informations.")
		return
	}

	room, err := rc.svc.Create(req.RoomInput, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "Room created successfully!", room)
}

func (rc *RoomController) List(c *gin.Context) {
	filter := services.RoomListFilter{
		Name:         c.Query("name"),
		BuildingID:   parseUintQuery(c, "buildingId"),
		BuildingName: c.Query("buildingName"),
		FloorName:    c.Query("floorName"),
		SortBy:       c.Query("sortBy"),
		SortOrder:    c.Query("sortOrder"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10")); err == nil {
		filter.PageSize = pageSize
	}

	result, err := rc.svc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, "Rooms retrieved successfully.",
		result.TotalCount, result.Page, result.PageSize, result.TotalPages, result.Rooms)
}

func (rc *RoomController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := rc.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room fetched successfully", room)
}

func (rc *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RoomPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room informations.")
		return
	}

	room, err := rc.svc.Update(id, req.RoomInput, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room updated successfully!", room)
}

func (rc *RoomController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room, err := rc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room deleted successfully (soft delete)", room)
}
