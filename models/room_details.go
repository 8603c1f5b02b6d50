package models

import "gorm.io/datatypes"

// RoomDetails is the one-to-one enrichment of a room. At most one active
// record may exist per room/floor/building triple; the service enforces it
// at create time, not the schema.
type RoomDetails struct {
	ID uint `gorm:"primaryKey" json:"roomDetailsId"`

	RoomID     uint `gorm:"index" json:"roomId"`
	FloorID    uint `gorm:"index" json:"floorId"`
	BuildingID uint `gorm:"index" json:"buildingId"`

	RoomDimension string `gorm:"size:128" json:"roomDimension"`
	// 1=east, 2=west, 3=north, 4=south
	RoomSideID int `json:"roomSideId"`
	// 1=attached balcony, 2=none
	RoomBelconiID int `json:"roomBelconiId"`
	// 1=attached bathroom, 2=none
	AttachedBathroomID int `json:"attachedBathroomId"`
	// Single=1, Double=2, Queen=3, King=4
	BedSpecificationID *int `json:"bedSpecificationId"`

	CommonFeatures        datatypes.JSONSlice[uint] `json:"commonFeatures"`
	AvailableFurnitures   datatypes.JSONSlice[uint] `json:"availableFurnitures"`
	BathroomSpecification datatypes.JSONSlice[uint] `json:"bathroomSpecification"`

	// Stored file names under the configured image directory.
	RoomImages datatypes.JSONSlice[string] `json:"roomImages"`

	Audit `gorm:"embedded"`
}
