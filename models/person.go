package models

// Person is a tenant/guest contact record. PersonalPhoneNo and Email are
// unique among active rows; the probe happens in the service, not the schema,
// so soft-deleted contacts can be re-registered.
type Person struct {
	ID uint `gorm:"primaryKey" json:"personId"`

	Name             string `gorm:"size:191" json:"name"`
	CompanyName      string `gorm:"size:191" json:"companyName"`
	PersonalPhoneNo  string `gorm:"size:64;index" json:"personalPhoneNo"`
	CompanyPhoneNo   string `gorm:"size:64" json:"companyPhoneNo"`
	Email            string `gorm:"size:191;index" json:"email"`
	NidBirthPassport string `gorm:"size:128" json:"nidBirthPassport"`
	CountryName      string `gorm:"size:128" json:"countryName"`
	Address          string `gorm:"type:text" json:"address"`

	Audit `gorm:"embedded"`
}
