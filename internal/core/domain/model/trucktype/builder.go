package trucktype

import "truckrental/internal/pkg/guard"

type Builder struct {
	id           int
	name         string
	description  string
	loadCapacity float64
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) SetDescription(description string) *Builder {
	b.description = description
	return b
}

func (b *Builder) SetLoadCapacity(tonnes float64) *Builder {
	b.loadCapacity = tonnes
	return b
}

func (b *Builder) Copy(t TruckType) *Builder {
	b.id = t.id
	b.name = t.name
	b.description = t.description
	b.loadCapacity = t.loadCapacity
	return b
}

func (b *Builder) Build() TruckType {
	return TruckType{
		id:           b.id,
		name:         b.name,
		description:  b.description,
		loadCapacity: b.loadCapacity,
		guard:        guard.NewConstructorGuard(),
	}
}
