// Package contactusrepo persists the published contact details.
package contactusrepo

import (
	"truckrental/internal/core/domain/model/contactus"
)

type ContactUsDTO struct {
	ID            int    `gorm:"primaryKey;autoIncrement:false"`
	Email         string `gorm:"not null"`
	Phone         string `gorm:"not null"`
	BusinessHours string `gorm:"not null"`
	Address       string `gorm:"not null"`
}

func (ContactUsDTO) TableName() string {
	return "contact_us"
}

func fromDomain(c contactus.ContactUs) ContactUsDTO {
	return ContactUsDTO{
		ID:            c.ID(),
		Email:         c.Email(),
		Phone:         c.Phone(),
		BusinessHours: c.BusinessHours(),
		Address:       c.Address(),
	}
}

func toDomain(dto ContactUsDTO) (contactus.ContactUs, error) {
	c := contactus.NewBuilder().
		SetID(dto.ID).
		SetEmail(dto.Email).
		SetPhone(dto.Phone).
		SetBusinessHours(dto.BusinessHours).
		SetAddress(dto.Address).
		Build()
	if err := c.Validate(); err != nil {
		return contactus.ContactUs{}, err
	}
	return c, nil
}
