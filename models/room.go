package models

import "time"

type Room struct {
	ID uint `gorm:"primaryKey" json:"roomId"`

	Name        string `gorm:"size:191" json:"roomName"`
	Description string `gorm:"type:text" json:"roomDescription"`
	Remarks     string `gorm:"type:text" json:"remarks"`

	RoomCategoryID uint `gorm:"index" json:"roomCategoryId"`
	FloorID        uint `gorm:"index" json:"floorId"`
	BuildingID     uint `gorm:"index" json:"buildingId"`

	HaveRoomDetails bool `gorm:"default:false" json:"haveRoomDetails"`
	IsRoomAvailable bool `gorm:"default:true" json:"isRoomAvailable"`

	Audit `gorm:"embedded"`
}

// RoomListRow is the joined listing shape: room columns plus the display
// names denormalized from the building/floor/category tables.
type RoomListRow struct {
	RoomID           uint      `json:"roomId"`
	RoomName         string    `json:"roomName"`
	RoomDescription  string    `json:"roomDescription"`
	Remarks          string    `json:"remarks"`
	RoomCategoryID   uint      `json:"roomCategoryId"`
	RoomCategoryName string    `json:"roomCategoryName"`
	FloorID          uint      `json:"floorId"`
	FloorName        string    `json:"floorName"`
	BuildingID       uint      `json:"buildingId"`
	BuildingName     string    `json:"buildingName"`
	HaveRoomDetails  bool      `json:"haveRoomDetails"`
	IsRoomAvailable  bool      `json:"isRoomAvailable"`
	CreatedBy        uint      `json:"createdBy"`
	CreatedTime      time.Time `json:"createdTime"`
	IsActive         bool      `json:"isActive"`
}
