package services

import (
	"errors"
	"strings"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

type BuildingService struct {
	DB *gorm.DB
}

func NewBuildingService(db *gorm.DB) *BuildingService {
	return &BuildingService{DB: db}
}

func (s *BuildingService) Create(name, remarks string, createdBy uint) (*models.Building, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Invalid("Invalid building informations.")
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Building{}).
		Where("name = ? AND is_active = ?", name, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Building already exists.")
	}

	building := models.Building{
		Name:    name,
		Remarks: remarks,
		Audit:   newAudit(createdBy),
	}
	if err := s.DB.Create(&building).Error; err != nil {
		return nil, err
	}
	return &building, nil
}

func (s *BuildingService) List() ([]models.Building, error) {
	var buildings []models.Building
	err := s.DB.Where("is_active = ?", true).Find(&buildings).Error
	return buildings, err
}

func (s *BuildingService) GetByID(id uint) (*models.Building, error) {
	var building models.Building
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&building).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Building not found")
	}
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (s *BuildingService) Update(id uint, name, remarks string, updatedBy uint) (*models.Building, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Invalid("Invalid building informations.")
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, NotFound("Building not found or inactive")
	}

	fields := updateStamps(map[string]interface{}{
		"name":    name,
		"remarks": remarks,
	}, updatedBy)
	if err := s.DB.Model(&models.Building{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *BuildingService) SoftDelete(id, inactiveBy uint) (*models.Building, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	building, err := s.GetByID(id)
	if err != nil {
		return nil, NotFound("Building not found or already inactive")
	}

	if err := s.DB.Model(&models.Building{}).Where("id = ?", id).
		Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	building.IsActive = false
	building.InactiveBy = &inactiveBy
	return building, nil
}
