package services

import (
	"time"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

func userExists(db *gorm.DB, userID uint) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count > 0, err
}

// requireUser is the actor check every mutation runs first.
func requireUser(db *gorm.DB, userID uint) error {
	ok, err := userExists(db, userID)
	if err != nil {
		return err
	}
	if !ok {
		return NotFound("User not found")
	}
	return nil
}

func now() time.Time { return time.Now().UTC() }

// tableNameMap fetches id->name for any table with an id/name pair.
func tableNameMap(db *gorm.DB, table string, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		ID   uint
		Name string
	}
	if err := db.Table(table).Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}

func newAudit(createdBy uint) models.Audit {
	return models.Audit{
		IsApprove:   false,
		IsActive:    true,
		CreatedBy:   createdBy,
		CreatedTime: now(),
	}
}

func softDeleteStamps(inactiveBy uint) map[string]interface{} {
	t := now()
	return map[string]interface{}{
		"is_active":     false,
		"inactive_by":   inactiveBy,
		"inactive_time": t,
	}
}

func updateStamps(fields map[string]interface{}, updatedBy uint) map[string]interface{} {
	t := now()
	fields["updated_by"] = updatedBy
	fields["updated_time"] = t
	return fields
}
