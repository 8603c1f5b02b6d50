package models

import "time"

// Audit is the approval / soft-delete / stamp column set shared by every
// dormitory table. Rows are never hard-deleted; IsActive=false marks removal.
type Audit struct {
	IsApprove    bool       `gorm:"default:false" json:"isApprove"`
	ApprovedBy   *uint      `json:"approvedBy,omitempty"`
	ApprovedTime *time.Time `json:"approvedTime,omitempty"`
	IsActive     bool       `gorm:"default:true;index" json:"isActive"`
	InactiveBy   *uint      `json:"inactiveBy,omitempty"`
	InactiveTime *time.Time `json:"inactiveTime,omitempty"`
	CreatedBy    uint       `json:"createdBy"`
	CreatedTime  time.Time  `json:"createdTime"`
	UpdatedBy    *uint      `json:"updatedBy,omitempty"`
	UpdatedTime  *time.Time `json:"updatedTime,omitempty"`
}
