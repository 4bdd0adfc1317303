// Package complaintrepo persists complaints. Complaints filed with an unknown email are stored
// with a NULL customer.
package complaintrepo

import (
	"time"

	"truckrental/internal/core/domain/model/complaint"
)

type ComplaintDTO struct {
	ID            int       `gorm:"primaryKey;autoIncrement:false"`
	Description   string    `gorm:"not null"`
	Status        string    `gorm:"not null"`
	ComplaintDate time.Time `gorm:"type:date;not null"`
	CustomerID    *int      `gorm:"index"`
	Response      string    `gorm:"not null"`
}

func (ComplaintDTO) TableName() string {
	return "complaints"
}

func fromDomain(c complaint.Complaint) ComplaintDTO {
	var customerID *int
	if c.HasCustomer() {
		id := c.CustomerID()
		customerID = &id
	}

	return ComplaintDTO{
		ID:            c.ID(),
		Description:   c.Description(),
		Status:        c.Status().String(),
		ComplaintDate: c.ComplaintDate(),
		CustomerID:    customerID,
		Response:      c.Response(),
	}
}

func toDomain(dto ComplaintDTO) (complaint.Complaint, error) {
	b := complaint.NewBuilder().
		SetID(dto.ID).
		SetDescription(dto.Description).
		SetStatus(complaint.Status(dto.Status)).
		SetComplaintDate(dto.ComplaintDate).
		SetResponse(dto.Response)
	if dto.CustomerID != nil {
		b.SetCustomerID(*dto.CustomerID)
	}

	c := b.Build()
	if err := c.Validate(); err != nil {
		return complaint.Complaint{}, err
	}
	return c, nil
}
