package controllers

import (
	"net/http"
	"time"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{svc: svc}
}

type BookingPostRequest struct {
	services.BookingInput
	CreatedBy uint `json:"createdBy"`
}

type BookingPutRequest struct {
	services.BookingInput
	UpdatedBy uint `json:"updatedBy"`
}

func (bc *BookingController) Create(c *gin.Context) {
	var req BookingPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room booking requirement's info.")
		return
	}

	booking, err := bc.svc.Create(req.BookingInput, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, "Room booked successfully!", booking)
}

func (bc *BookingController) List(c *gin.Context) {
	filter := services.BookingListFilter{Search: c.Query("search")}
	if from, ok := parseTimeQuery(c, "from"); ok {
		filter.From = &from
	}
	if to, ok := parseTimeQuery(c, "to"); ok {
		filter.To = &to
	}

	bookings, err := bc.svc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room bookings retrieved successfully.", bookings)
}

func (bc *BookingController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req BookingPutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid room booking requirement's info.")
		return
	}

	booking, err := bc.svc.Update(id, req.BookingInput, req.UpdatedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room booking updated successfully!", booking)
}

func (bc *BookingController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := bc.svc.SoftDelete(id, req.InactiveBy)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Room booking deleted successfully (soft delete)", booking)
}

// AvailableRooms lists rooms free for the whole queried half-open window.
func (bc *BookingController) AvailableRooms(c *gin.Context) {
	start, okStart := parseTimeQuery(c, "searchByStartTime")
	end, okEnd := parseTimeQuery(c, "searchByEndTime")
	if !okStart || !okEnd {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid date range provided.")
		return
	}

	rooms, err := bc.svc.FindAvailableRooms(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, "Available rooms retrieved successfully.", rooms)
}

// parseTimeQuery accepts RFC3339 or a zone-less timestamp (taken as UTC),
// since booking clients send both forms.
func parseTimeQuery(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	t, err := time.Parse("2006-01-02T15:04:05", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
