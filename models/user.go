package models

import "time"

// User is an admin account. Only used for login and as the actor behind
// createdBy/updatedBy/inactiveBy stamps on the dormitory tables.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"userId"`
	Name      string    `gorm:"size:191" json:"name"`
	Email     string    `gorm:"size:191;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:191" json:"-"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
