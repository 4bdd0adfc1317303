package accidentreport

import (
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/guard"
)

type Builder struct {
	id           int
	accidentDate time.Time
	description  string
	location     string
	damageCost   float64
	truckID      int
	customerID   int
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetAccidentDate(date time.Time) *Builder {
	b.accidentDate = kernel.DateOf(date)
	return b
}

func (b *Builder) SetDescription(description string) *Builder {
	b.description = description
	return b
}

func (b *Builder) SetLocation(location string) *Builder {
	b.location = location
	return b
}

func (b *Builder) SetDamageCost(cost float64) *Builder {
	b.damageCost = cost
	return b
}

func (b *Builder) SetTruckID(truckID int) *Builder {
	b.truckID = truckID
	return b
}

func (b *Builder) SetCustomerID(customerID int) *Builder {
	b.customerID = customerID
	return b
}

func (b *Builder) Copy(a AccidentReport) *Builder {
	b.id = a.id
	b.accidentDate = a.accidentDate
	b.description = a.description
	b.location = a.location
	b.damageCost = a.damageCost
	b.truckID = a.truckID
	b.customerID = a.customerID
	return b
}

func (b *Builder) Build() AccidentReport {
	return AccidentReport{
		id:           b.id,
		accidentDate: b.accidentDate,
		description:  b.description,
		location:     b.location,
		damageCost:   b.damageCost,
		truckID:      b.truckID,
		customerID:   b.customerID,
		guard:        guard.NewConstructorGuard(),
	}
}
