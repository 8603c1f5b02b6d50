package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"dormitory-backend/services"
	"dormitory-backend/utils"

	"github.com/gin-gonic/gin"
)

// DeleteRequest is the body every soft-delete endpoint takes: the actor
// performing the removal.
type DeleteRequest struct {
	InactiveBy uint `json:"inactiveBy"`
}

// respondError maps a service error onto the envelope; anything without a
// status becomes a 500 with the raw message.
func respondError(c *gin.Context, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		utils.JSONMessage(c, svcErr.Status, svcErr.Message)
		return
	}
	utils.JSONMessage(c, http.StatusInternalServerError, err.Error())
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

func parseUintQuery(c *gin.Context, key string) uint {
	value, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}
