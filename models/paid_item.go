package models

type PaidItem struct {
	ID uint `gorm:"primaryKey" json:"paidItemId"`

	Name string `gorm:"size:191" json:"name"`
	// Price is a string-typed numeric, matching the billing sheet input.
	Price            string `gorm:"size:64" json:"price"`
	PriceCalculateBy int    `json:"priceCalculateBy"`
	Remarks          string `gorm:"type:text" json:"remarks"`

	Audit `gorm:"embedded"`
}
