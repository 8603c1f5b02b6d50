package services

import (
	"errors"
	"fmt"
	"strings"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

// SpecItemService serves one of the four room specification catalogs
// (common feature, furniture, bed, bathroom). They share a row shape, so a
// single service is scoped onto the right table; label feeds the messages.
type SpecItemService struct {
	DB    *gorm.DB
	table string
	label string
}

func NewSpecItemService(db *gorm.DB, table, label string) *SpecItemService {
	return &SpecItemService{DB: db, table: table, label: label}
}

func (s *SpecItemService) scoped() *gorm.DB {
	return s.DB.Table(s.table)
}

func (s *SpecItemService) Create(name, remarks string, createdBy uint) (*models.RoomSpecItem, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(remarks) == "" {
		return nil, Invalid(fmt.Sprintf("Invalid %s informations.", s.label))
	}

	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	var count int64
	if err := s.scoped().Where("name = ? AND is_active = ?", name, true).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict(fmt.Sprintf("%s already exists.", s.label))
	}

	item := models.RoomSpecItem{
		Name:    name,
		Remarks: remarks,
		Audit:   newAudit(createdBy),
	}
	if err := s.scoped().Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *SpecItemService) List() ([]models.RoomSpecItem, error) {
	var items []models.RoomSpecItem
	err := s.scoped().Where("is_active = ?", true).Find(&items).Error
	return items, err
}

func (s *SpecItemService) GetByID(id uint) (*models.RoomSpecItem, error) {
	var item models.RoomSpecItem
	err := s.scoped().Where("id = ? AND is_active = ?", id, true).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound(fmt.Sprintf("%s not found", s.label))
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *SpecItemService) Update(id uint, name, remarks string, updatedBy uint) (*models.RoomSpecItem, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(remarks) == "" {
		return nil, Invalid(fmt.Sprintf("Invalid %s informations.", s.label))
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}

	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := updateStamps(map[string]interface{}{
		"name":    name,
		"remarks": remarks,
	}, updatedBy)
	if err := s.scoped().Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetByID(item.ID)
}

func (s *SpecItemService) SoftDelete(id, inactiveBy uint) (*models.RoomSpecItem, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	item, err := s.GetByID(id)
	if err != nil {
		return nil, NotFound(fmt.Sprintf("%s not found or already inactive", s.label))
	}

	if err := s.scoped().Where("id = ?", id).Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	item.IsActive = false
	item.InactiveBy = &inactiveBy
	return item, nil
}

// NameMap resolves a set of ids to names for denormalized responses.
// Ids that resolve to nothing are simply absent from the map.
func (s *SpecItemService) NameMap(ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.RoomSpecItem
	if err := s.scoped().Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}
