package controllers

import (
	"fmt"
	"net/http"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

// SpecController serves one of the four room specification catalogs
// (common feature, furniture, bed, bathroom). The service it wraps decides
// the table; label feeds the messages.
type SpecController struct {
	svc   *services.SpecItemService
	label string
}

func NewSpecController(svc *services.SpecItemService, label string) *SpecController {
	return &SpecController{svc: svc, label: label}
}

type SpecPostRequest struct {
	Name      string `json:"name"`
	Remarks   string `json:"remarks"`
	CreatedBy uint   `json:"createdBy"`
}

type SpecPutRequest struct {
	Name      string `json:"name"`
	Remarks   string `json:"remarks"`
	UpdatedBy uint   `json:"updatedBy"`
}

func (sc *SpecController) Create(c *gin.Context) {
	var req SpecPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s informations.", sc.label))
		return
	}

	item, err := sc.svc.Create(req.Name, req.Remarks, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, fmt.Sprintf("%s created successfully!", sc.label), item)
}

func (sc *SpecController) List(c *gin.Context) {
	items, err := sc.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, fmt.Sprintf("%s retrieved successfully.", sc.label), items)
}

func (sc *SpecController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := sc.svc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, fmt.Sprintf("%s fetched successfully", sc.label), item)
}

func (sc *SpecController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SpecPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s informations.", sc.label))
		return
	}

	item, err := sc.svc.Update(id, req.Name, req.Remarks, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, fmt.Sprintf("%s updated successfully!", sc.label), item)
}

func (sc *SpecController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := sc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, fmt.Sprintf("%s deleted successfully (soft delete)", sc.label), item)
}
