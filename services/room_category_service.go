package services

import (
	"errors"
	"strings"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

type RoomCategoryService struct {
	DB *gorm.DB
}

func NewRoomCategoryService(db *gorm.DB) *RoomCategoryService {
	return &RoomCategoryService{DB: db}
}

type RoomCategoryInput struct {
	Name               string `json:"name"`
	CategoryBasedPrice string `json:"categoryBasedPrice"`
	NoOfPerson         int    `json:"noOfPerson"`
	Remarks            string `json:"remarks"`
}

func (s *RoomCategoryService) Create(in RoomCategoryInput, createdBy uint) (*models.RoomCategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || strings.TrimSpace(in.Remarks) == "" {
		return nil, Invalid("Invalid room category data.")
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.RoomCategory{}).
		Where("name = ? AND is_active = ?", in.Name, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Room category already exists.")
	}

	category := models.RoomCategory{
		Name:               in.Name,
		CategoryBasedPrice: in.CategoryBasedPrice,
		NoOfPerson:         in.NoOfPerson,
		Remarks:            in.Remarks,
		Audit:              newAudit(createdBy),
	}
	if err := s.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *RoomCategoryService) List() ([]models.RoomCategory, error) {
	var categories []models.RoomCategory
	err := s.DB.Where("is_active = ?", true).Find(&categories).Error
	return categories, err
}

func (s *RoomCategoryService) GetByID(id uint) (*models.RoomCategory, error) {
	var category models.RoomCategory
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Room category not found")
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *RoomCategoryService) Update(id uint, in RoomCategoryInput, updatedBy uint) (*models.RoomCategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || strings.TrimSpace(in.Remarks) == "" {
		return nil, Invalid("Invalid room category data.")
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, NotFound("Room category not found or inactive")
	}

	fields := updateStamps(map[string]interface{}{
		"name":                 in.Name,
		"category_based_price": in.CategoryBasedPrice,
		"no_of_person":         in.NoOfPerson,
		"remarks":              in.Remarks,
	}, updatedBy)
	if err := s.DB.Model(&models.RoomCategory{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *RoomCategoryService) SoftDelete(id, inactiveBy uint) (*models.RoomCategory, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	category, err := s.GetByID(id)
	if err != nil {
		return nil, NotFound("Room category not found or already inactive")
	}

	if err := s.DB.Model(&models.RoomCategory{}).Where("id = ?", id).
		Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	category.IsActive = false
	category.InactiveBy = &inactiveBy
	return category, nil
}
