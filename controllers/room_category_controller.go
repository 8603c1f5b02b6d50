package controllers

import (
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomCategoryController struct {
	svc *services.RoomCategoryService
}

func NewRoomCategoryController(svc *services.RoomCategoryService) *RoomCategoryController {
	return &RoomCategoryController{svc: svc}
}

type RoomCategoryPostRequest struct {
	services.RoomCategoryInput
	CreatedBy uint `json:"createdBy"`
}

type RoomCategoryPutRequest struct {
	services.RoomCategoryInput
	UpdatedBy uint `json:"updatedBy"`
}

func (cc *RoomCategoryController) Create(c *gin.Context) {
	var req RoomCategoryPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room category data.")
		return
	}

	category, err := cc.svc.Create(req.RoomCategoryInput, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "Room category created successfully!", category)
}

func (cc *RoomCategoryController) List(c *gin.Context) {
	categories, err := cc.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room categories retrieved successfully.", categories)
}

func (cc *RoomCategoryController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := cc.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room category fetched successfully", category)
}

func (cc *RoomCategoryController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RoomCategoryPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room category data.")
		return
	}

	category, err := cc.svc.Update(id, req.RoomCategoryInput, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room category updated successfully!", category)
}

func (cc *RoomCategoryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := cc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room category deleted successfully (soft delete)", category)
}
