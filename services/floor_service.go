package services

import (
	"errors"
	"strings"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

type FloorService struct {
	DB *gorm.DB
}

func NewFloorService(db *gorm.DB) *FloorService {
	return &FloorService{DB: db}
}

func (s *FloorService) buildingActive(buildingID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Building{}).
		Where("id = ? AND is_active = ?", buildingID, true).
		Count(&count).Error
	return count > 0, err
}

func (s *FloorService) Create(name string, buildingID uint, remarks string, createdBy uint) (*models.Floor, error) {
	name = strings.TrimSpace(name)
	if name == "" || buildingID == 0 {
		return nil, Invalid("Invalid floor informations.")
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	ok, err := s.buildingActive(buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("Building not found or inactive")
	}

	var count int64
	if err := s.DB.Model(&models.Floor{}).
		Where("name = ? AND building_id = ? AND is_active = ?", name, buildingID, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Floor already exists.")
	}

	floor := models.Floor{
		Name:       name,
		BuildingID: buildingID,
		Remarks:    remarks,
		Audit:      newAudit(createdBy),
	}
	if err := s.DB.Create(&floor).Error; err != nil {
		return nil, err
	}
	return &floor, nil
}

func (s *FloorService) List() ([]models.Floor, error) {
	var floors []models.Floor
	err := s.DB.Where("is_active = ?", true).Find(&floors).Error
	return floors, err
}

func (s *FloorService) GetByID(id uint) (*models.Floor, error) {
	var floor models.Floor
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&floor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Floor not found")
	}
	if err != nil {
		return nil, err
	}
	return &floor, nil
}

func (s *FloorService) Update(id uint, name string, buildingID uint, remarks string, updatedBy uint) (*models.Floor, error) {
	name = strings.TrimSpace(name)
	if name == "" || buildingID == 0 {
		return nil, Invalid("Invalid floor informations.")
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, NotFound("Floor not found or inactive")
	}

	ok, err := s.buildingActive(buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("Building not found or inactive")
	}

	fields := updateStamps(map[string]interface{}{
		"name":        name,
		"building_id": buildingID,
		"remarks":     remarks,
	}, updatedBy)
	if err := s.DB.Model(&models.Floor{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *FloorService) SoftDelete(id, inactiveBy uint) (*models.Floor, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	floor, err := s.GetByID(id)
	if err != nil {
		return nil, NotFound("Floor not found or already inactive")
	}

	if err := s.DB.Model(&models.Floor{}).Where("id = ?", id).
		Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	floor.IsActive = false
	floor.InactiveBy = &inactiveBy
	return floor, nil
}
