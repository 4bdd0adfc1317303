package truck

import "truckrental/internal/pkg/guard"

type Builder struct {
	id           int
	vin          string
	model        string
	licensePlate string
	dailyRate    float64
	available    bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetVIN(vin string) *Builder {
	b.vin = vin
	return b
}

func (b *Builder) SetModel(model string) *Builder {
	b.model = model
	return b
}

func (b *Builder) SetLicensePlate(licensePlate string) *Builder {
	b.licensePlate = licensePlate
	return b
}

func (b *Builder) SetDailyRate(dailyRate float64) *Builder {
	b.dailyRate = dailyRate
	return b
}

func (b *Builder) SetAvailable(available bool) *Builder {
	b.available = available
	return b
}

func (b *Builder) Copy(t Truck) *Builder {
	b.id = t.id
	b.vin = t.vin
	b.model = t.model
	b.licensePlate = t.licensePlate
	b.dailyRate = t.dailyRate
	b.available = t.available
	return b
}

func (b *Builder) Build() Truck {
	return Truck{
		id:           b.id,
		vin:          b.vin,
		model:        b.model,
		licensePlate: b.licensePlate,
		dailyRate:    b.dailyRate,
		available:    b.available,
		guard:        guard.NewConstructorGuard(),
	}
}
