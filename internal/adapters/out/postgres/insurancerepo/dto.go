// Package insurancerepo persists truck insurance policies.
package insurancerepo

import (
	"time"

	"truckrental/internal/core/domain/model/insurance"
)

type InsuranceDTO struct {
	ID             int       `gorm:"primaryKey;autoIncrement:false"`
	InsuranceType  string    `gorm:"not null"`
	Provider       string    `gorm:"not null"`
	PolicyNumber   string    `gorm:"not null"`
	CoverageAmount float64   `gorm:"type:numeric(14,2);not null"`
	StartDate      time.Time `gorm:"type:date;not null"`
	TruckID        int       `gorm:"not null;index"`
}

func (InsuranceDTO) TableName() string {
	return "insurances"
}

func fromDomain(i insurance.Insurance) InsuranceDTO {
	return InsuranceDTO{
		ID:             i.ID(),
		InsuranceType:  i.InsuranceType(),
		Provider:       i.Provider(),
		PolicyNumber:   i.PolicyNumber(),
		CoverageAmount: i.CoverageAmount(),
		StartDate:      i.StartDate(),
		TruckID:        i.TruckID(),
	}
}

func toDomain(dto InsuranceDTO) (insurance.Insurance, error) {
	i := insurance.NewBuilder().
		SetID(dto.ID).
		SetInsuranceType(dto.InsuranceType).
		SetProvider(dto.Provider).
		SetPolicyNumber(dto.PolicyNumber).
		SetCoverageAmount(dto.CoverageAmount).
		SetStartDate(dto.StartDate).
		SetTruckID(dto.TruckID).
		Build()
	if err := i.Validate(); err != nil {
		return insurance.Insurance{}, err
	}
	return i, nil
}
