package models

// RoomSpecItem is the shared row shape of the four room specification
// catalogs: common features, furnitures, bed specs and bathroom specs.
// Each catalog lives in its own table; services scope queries with Table().
type RoomSpecItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:191" json:"name"`
	Remarks string `gorm:"type:text" json:"remarks"`
	Audit   `gorm:"embedded"`
}

const (
	TableCommonFeatures = "room_common_features"
	TableFurnitures     = "room_furnitures"
	TableBeds           = "room_beds"
	TableBathrooms      = "room_bathrooms"
)
