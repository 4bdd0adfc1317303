// Package trucktyperepo persists the truck type catalogue.
package trucktyperepo

import (
	"truckrental/internal/core/domain/model/trucktype"
)

type TruckTypeDTO struct {
	ID           int     `gorm:"primaryKey;autoIncrement:false"`
	Name         string  `gorm:"not null"`
	Description  string  `gorm:"not null;default:''"`
	LoadCapacity float64 `gorm:"type:numeric(6,2);not null"`
}

func (TruckTypeDTO) TableName() string {
	return "truck_types"
}

func fromDomain(t trucktype.TruckType) TruckTypeDTO {
	return TruckTypeDTO{
		ID:           t.ID(),
		Name:         t.Name(),
		Description:  t.Description(),
		LoadCapacity: t.LoadCapacity(),
	}
}

func toDomain(dto TruckTypeDTO) (trucktype.TruckType, error) {
	t := trucktype.NewBuilder().
		SetID(dto.ID).
		SetName(dto.Name).
		SetDescription(dto.Description).
		SetLoadCapacity(dto.LoadCapacity).
		Build()
	if err := t.Validate(); err != nil {
		return trucktype.TruckType{}, err
	}
	return t, nil
}
