package controllers

import (
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaidItemController struct {
	svc *services.PaidItemService
}

func NewPaidItemController(svc *services.PaidItemService) *PaidItemController {
	return &PaidItemController{svc: svc}
}

type PaidItemPostRequest struct {
	services.PaidItemInput
	CreatedBy uint `json:"createdBy"`
}

type PaidItemPutRequest struct {
	services.PaidItemInput
	UpdatedBy uint `json:"updatedBy"`
}

func (pc *PaidItemController) Create(c *gin.Context) {
	var req PaidItemPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid paid items data.")
		return
	}

	item, err := pc.svc.Create(req.PaidItemInput, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "Paid item created successfully!", item)
}

func (pc *PaidItemController) List(c *gin.Context) {
	items, err := pc.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Paid Items retrieved successfully.", items)
}

func (pc *PaidItemController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := pc.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Paid item fetched successfully", item)
}

func (pc *PaidItemController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PaidItemPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid paid items data.")
		return
	}

	item, err := pc.svc.Update(id, req.PaidItemInput, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Paid item updated successfully!", item)
}

func (pc *PaidItemController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := pc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Paid item deleted successfully (soft delete)", item)
}
