package branch

import "truckrental/internal/pkg/guard"

type Builder struct {
	id      int
	name    string
	address string
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

func (b *Builder) SetAddress(address string) *Builder {
	b.address = address
	return b
}

func (b *Builder) Copy(br Branch) *Builder {
	b.id = br.id
	b.name = br.name
	b.address = br.address
	return b
}

func (b *Builder) Build() Branch {
	return Branch{
		id:      b.id,
		name:    b.name,
		address: b.address,
		guard:   guard.NewConstructorGuard(),
	}
}
