package models

type Floor struct {
	ID         uint   `gorm:"primaryKey" json:"floorId"`
	Name       string `gorm:"size:191" json:"floorName"`
	BuildingID uint   `gorm:"index" json:"buildingId"`
	Remarks    string `gorm:"type:text" json:"remarks"`
	Audit      `gorm:"embedded"`
}
