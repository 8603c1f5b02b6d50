package services

import (
	"errors"
	"strings"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

type PaidItemService struct {
	DB *gorm.DB
}

func NewPaidItemService(db *gorm.DB) *PaidItemService {
	return &PaidItemService{DB: db}
}

type PaidItemInput struct {
	Name             string `json:"name"`
	Price            string `json:"price"`
	PriceCalculateBy int    `json:"priceCalculateBy"`
	Remarks          string `json:"remarks"`
}

func (s *PaidItemService) Create(in PaidItemInput, createdBy uint) (*models.PaidItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || strings.TrimSpace(in.Price) == "" || strings.TrimSpace(in.Remarks) == "" {
		return nil, Invalid("Invalid paid items data.")
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.PaidItem{}).
		Where("name = ? AND is_active = ?", in.Name, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Paid items already exists.")
	}

	item := models.PaidItem{
		Name:             in.Name,
		Price:            in.Price,
		PriceCalculateBy: in.PriceCalculateBy,
		Remarks:          in.Remarks,
		Audit:            newAudit(createdBy),
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PaidItemService) List() ([]models.PaidItem, error) {
	var items []models.PaidItem
	err := s.DB.Where("is_active = ?", true).Find(&items).Error
	return items, err
}

func (s *PaidItemService) GetByID(id uint) (*models.PaidItem, error) {
	var item models.PaidItem
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Paid item not found")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PaidItemService) Update(id uint, in PaidItemInput, updatedBy uint) (*models.PaidItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || strings.TrimSpace(in.Price) == "" || strings.TrimSpace(in.Remarks) == "" {
		return nil, Invalid("Invalid paid items data.")
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, NotFound("Paid item not found or inactive")
	}

	fields := updateStamps(map[string]interface{}{
		"name":               in.Name,
		"price":              in.Price,
		"price_calculate_by": in.PriceCalculateBy,
		"remarks":            in.Remarks,
	}, updatedBy)
	if err := s.DB.Model(&models.PaidItem{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *PaidItemService) SoftDelete(id, inactiveBy uint) (*models.PaidItem, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	item, err := s.GetByID(id)
	if err != nil {
		return nil, NotFound("Paid item not found or already inactive")
	}

	if err := s.DB.Model(&models.PaidItem{}).Where("id = ?", id).
		Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	item.IsActive = false
	item.InactiveBy = &inactiveBy
	return item, nil
}
