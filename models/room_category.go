package models

type RoomCategory struct {
	ID uint `gorm:"primaryKey" json:"roomCategoryId"`

	Name string `gorm:"size:191" json:"name"`
	// Price kept as a string, the way the billing sheet supplies it.
	CategoryBasedPrice string `gorm:"size:64" json:"categoryBasedPrice"`
	NoOfPerson         int    `json:"noOfPerson"`
	Remarks            string `gorm:"type:text" json:"remarks"`

	Audit `gorm:"embedded"`
}
