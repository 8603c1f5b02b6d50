package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomBooking reserves a room for a person over the half-open interval
// [StartTime, EndTime). Totals are supplied by the caller and stored as-is.
type RoomBooking struct {
	ID uint `gorm:"primaryKey" json:"roomBookingId"`

	RoomID   uint `gorm:"index" json:"roomId"`
	PersonID uint `gorm:"index" json:"personId"`

	PaidItems datatypes.JSON `json:"paidItems"`
	FreeItems datatypes.JSON `json:"freeItems"`

	TotalPaidItemsPrice float64 `json:"totalPaidItemsPrice"`
	TotalFreeItemsPrice float64 `json:"totalFreeItemsPrice"`
	TotalRoomPrice      float64 `json:"totalRoomPrice"`
	GrandTotal          float64 `json:"grandTotal"`
	TotalDays           int     `json:"totalDays"`

	StartTime time.Time `gorm:"index" json:"startTime"`
	EndTime   time.Time `gorm:"index" json:"endTime"`

	Remarks string `gorm:"type:text" json:"remarks"`

	Audit `gorm:"embedded"`
}

// AvailableRoom is a free room plus the display fields the booking screen
// needs: names from the lookup tables and capacity/price from the category.
type AvailableRoom struct {
	RoomID           uint   `json:"roomId"`
	RoomName         string `json:"roomName"`
	RoomDescription  string `json:"roomDescription"`
	Remarks          string `json:"remarks"`
	RoomCategoryID   uint   `json:"roomCategoryId"`
	FloorID          uint   `json:"floorId"`
	BuildingID       uint   `json:"buildingId"`
	IsRoomAvailable  bool   `json:"isRoomAvailable"`
	HaveRoomDetails  bool   `json:"haveRoomDetails"`
	FloorName        string `json:"floorName"`
	BuildingName     string `json:"buildingName"`
	RoomCategoryName string `json:"roomCategoryName"`
	RoomWisePerson   int    `json:"roomWisePerson"`
	RoomPrice        string `json:"roomPrice"`
}
