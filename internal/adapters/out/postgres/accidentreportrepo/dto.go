// Package accidentreportrepo persists accident reports.
package accidentreportrepo

import (
	"time"

	"truckrental/internal/core/domain/model/accidentreport"
)

type AccidentReportDTO struct {
	ID           int       `gorm:"primaryKey;autoIncrement:false"`
	AccidentDate time.Time `gorm:"type:date;not null"`
	Description  string    `gorm:"not null"`
	Location     string    `gorm:"not null"`
	DamageCost   float64   `gorm:"type:numeric(14,2);not null"`
	TruckID      int       `gorm:"not null;index"`
	CustomerID   int       `gorm:"not null;index"`
}

func (AccidentReportDTO) TableName() string {
	return "accident_reports"
}

func fromDomain(a accidentreport.AccidentReport) AccidentReportDTO {
	return AccidentReportDTO{
		ID:           a.ID(),
		AccidentDate: a.AccidentDate(),
		Description:  a.Description(),
		Location:     a.Location(),
		DamageCost:   a.DamageCost(),
		TruckID:      a.TruckID(),
		CustomerID:   a.CustomerID(),
	}
}

func toDomain(dto AccidentReportDTO) (accidentreport.AccidentReport, error) {
	a := accidentreport.NewBuilder().
		SetID(dto.ID).
		SetAccidentDate(dto.AccidentDate).
		SetDescription(dto.Description).
		SetLocation(dto.Location).
		SetDamageCost(dto.DamageCost).
		SetTruckID(dto.TruckID).
		SetCustomerID(dto.CustomerID).
		Build()
	if err := a.Validate(); err != nil {
		return accidentreport.AccidentReport{}, err
	}
	return a, nil
}
