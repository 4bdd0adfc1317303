// Package customerrepo persists customers.
package customerrepo

import (
	"truckrental/internal/core/domain/model/customer"
)

type CustomerDTO struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"`
	CellNo    string `gorm:"column:cell_no;not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		CellNo:    c.CellNo(),
	}
}

func toDomain(dto CustomerDTO) (customer.Customer, error) {
	c := customer.NewBuilder().
		SetID(dto.ID).
		SetFirstName(dto.FirstName).
		SetLastName(dto.LastName).
		SetEmail(dto.Email).
		SetCellNo(dto.CellNo).
		Build()
	if err := c.Validate(); err != nil {
		return customer.Customer{}, err
	}
	return c, nil
}
