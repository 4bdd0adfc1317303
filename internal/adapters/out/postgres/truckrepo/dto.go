// Package truckrepo persists the fleet.
package truckrepo

import (
	"truckrental/internal/core/domain/model/truck"
)

type TruckDTO struct {
	ID           int     `gorm:"primaryKey;autoIncrement:false"`
	VIN          string  `gorm:"column:vin;not null"`
	Model        string  `gorm:"not null"`
	LicensePlate string  `gorm:"not null"`
	DailyRate    float64 `gorm:"type:numeric(12,2);not null"`
	Available    bool    `gorm:"not null"`
}

func (TruckDTO) TableName() string {
	return "trucks"
}

func fromDomain(t truck.Truck) TruckDTO {
	return TruckDTO{
		ID:           t.ID(),
		VIN:          t.VIN(),
		Model:        t.Model(),
		LicensePlate: t.LicensePlate(),
		DailyRate:    t.DailyRate(),
		Available:    t.Available(),
	}
}

func toDomain(dto TruckDTO) (truck.Truck, error) {
	t := truck.NewBuilder().
		SetID(dto.ID).
		SetVIN(dto.VIN).
		SetModel(dto.Model).
		SetLicensePlate(dto.LicensePlate).
		SetDailyRate(dto.DailyRate).
		SetAvailable(dto.Available).
		Build()
	if err := t.Validate(); err != nil {
		return truck.Truck{}, err
	}
	return t, nil
}
