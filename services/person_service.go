package services

import (
	"errors"
	"strings"

	"dormitory-backend/models"

	"gorm.io/gorm"
)

type PersonService struct {
	DB *gorm.DB
}

func NewPersonService(db *gorm.DB) *PersonService {
	return &PersonService{DB: db}
}

type PersonInput struct {
	Name             string `json:"name"`
	CompanyName      string `json:"companyName"`
	PersonalPhoneNo  string `json:"personalPhoneNo"`
	CompanyPhoneNo   string `json:"companyPhoneNo"`
	Email            string `json:"email"`
	NidBirthPassport string `json:"nidBirthPassport"`
	CountryName      string `json:"countryName"`
	Address          string `json:"address"`
}

func (in *PersonInput) valid() bool {
	return strings.TrimSpace(in.Name) != "" &&
		strings.TrimSpace(in.CompanyName) != "" &&
		strings.TrimSpace(in.PersonalPhoneNo) != "" &&
		strings.TrimSpace(in.CompanyPhoneNo) != "" &&
		strings.TrimSpace(in.Email) != "" &&
		strings.TrimSpace(in.NidBirthPassport) != "" &&
		strings.TrimSpace(in.CountryName) != ""
}

func (s *PersonService) Create(in PersonInput, createdBy uint) (*models.Person, error) {
	if !in.valid() {
		return nil, Invalid("Invalid informations to add new person.")
	}
	if err := requireUser(s.DB, createdBy); err != nil {
		return nil, err
	}

	// Phone and email must both be unused among active persons.
	var count int64
	if err := s.DB.Model(&models.Person{}).
		Where("(personal_phone_no = ? OR email = ?) AND is_active = ?", in.PersonalPhoneNo, in.Email, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict("Personal contact no or email already exists.")
	}

	person := models.Person{
		Name:             in.Name,
		CompanyName:      in.CompanyName,
		PersonalPhoneNo:  in.PersonalPhoneNo,
		CompanyPhoneNo:   in.CompanyPhoneNo,
		Email:            in.Email,
		NidBirthPassport: in.NidBirthPassport,
		CountryName:      in.CountryName,
		Address:          in.Address,
		Audit:            newAudit(createdBy),
	}
	if err := s.DB.Create(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// List returns active persons, optionally filtered by a substring match on
// name, phone or email.
func (s *PersonService) List(search string) ([]models.Person, error) {
	query := s.DB.Where("is_active = ?", true)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR personal_phone_no LIKE ? OR email LIKE ?", like, like, like)
	}

	var persons []models.Person
	err := query.Find(&persons).Error
	return persons, err
}

func (s *PersonService) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	err := s.DB.Where("id = ? AND is_active = ?", id, true).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Person not found")
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *PersonService) Update(id uint, in PersonInput, updatedBy uint) (*models.Person, error) {
	if !in.valid() {
		return nil, Invalid("Invalid informations to update person's info")
	}
	if err := requireUser(s.DB, updatedBy); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, NotFound("Person not found or inactive")
	}

	fields := updateStamps(map[string]interface{}{
		"name":               in.Name,
		"company_name":       in.CompanyName,
		"personal_phone_no":  in.PersonalPhoneNo,
		"company_phone_no":   in.CompanyPhoneNo,
		"email":              in.Email,
		"nid_birth_passport": in.NidBirthPassport,
		"country_name":       in.CountryName,
		"address":            in.Address,
	}, updatedBy)
	if err := s.DB.Model(&models.Person{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *PersonService) SoftDelete(id, inactiveBy uint) (*models.Person, error) {
	if err := requireUser(s.DB, inactiveBy); err != nil {
		return nil, err
	}

	person, err := s.GetByID(id)
	if err != nil {
		return nil, NotFound("Person not found or already inactive")
	}

	if err := s.DB.Model(&models.Person{}).Where("id = ?", id).
		Updates(softDeleteStamps(inactiveBy)).Error; err != nil {
		return nil, err
	}
	person.IsActive = false
	person.InactiveBy = &inactiveBy
	return person, nil
}
