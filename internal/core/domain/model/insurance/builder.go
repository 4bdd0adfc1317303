package insurance

import (
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/guard"
)

type Builder struct {
	id             int
	insuranceType  string
	provider       string
	policyNumber   string
	coverageAmount float64
	startDate      time.Time
	truckID        int
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetInsuranceType(insuranceType string) *Builder {
	b.insuranceType = insuranceType
	return b
}

func (b *Builder) SetProvider(provider string) *Builder {
	b.provider = provider
	return b
}

func (b *Builder) SetPolicyNumber(policyNumber string) *Builder {
	b.policyNumber = policyNumber
	return b
}

func (b *Builder) SetCoverageAmount(amount float64) *Builder {
	b.coverageAmount = amount
	return b
}

func (b *Builder) SetStartDate(date time.Time) *Builder {
	b.startDate = kernel.DateOf(date)
	return b
}

func (b *Builder) SetTruckID(truckID int) *Builder {
	b.truckID = truckID
	return b
}

func (b *Builder) Copy(i Insurance) *Builder {
	b.id = i.id
	b.insuranceType = i.insuranceType
	b.provider = i.provider
	b.policyNumber = i.policyNumber
	b.coverageAmount = i.coverageAmount
	b.startDate = i.startDate
	b.truckID = i.truckID
	return b
}

func (b *Builder) Build() Insurance {
	return Insurance{
		id:             b.id,
		insuranceType:  b.insuranceType,
		provider:       b.provider,
		policyNumber:   b.policyNumber,
		coverageAmount: b.coverageAmount,
		startDate:      b.startDate,
		truckID:        b.truckID,
		guard:          guard.NewConstructorGuard(),
	}
}
