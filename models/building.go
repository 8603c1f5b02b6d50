package models

type Building struct {
	ID      uint   `gorm:"primaryKey" json:"buildingId"`
	Name    string `gorm:"size:191" json:"buildingName"`
	Remarks string `gorm:"type:text" json:"remarks"`
	Audit   `gorm:"embedded"`
}
