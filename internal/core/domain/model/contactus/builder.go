package contactus

import "truckrental/internal/pkg/guard"

type Builder struct {
	id            int
	email         string
	phone         string
	businessHours string
	address       string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetEmail(email string) *Builder {
	b.email = email
	return b
}

func (b *Builder) SetPhone(phone string) *Builder {
	b.phone = phone
	return b
}

func (b *Builder) SetBusinessHours(businessHours string) *Builder {
	b.businessHours = businessHours
	return b
}

func (b *Builder) SetAddress(address string) *Builder {
	b.address = address
	return b
}

func (b *Builder) Copy(c ContactUs) *Builder {
	b.id = c.id
	b.email = c.email
	b.phone = c.phone
	b.businessHours = c.businessHours
	b.address = c.address
	return b
}

func (b *Builder) Build() ContactUs {
	return ContactUs{
		id:            b.id,
		email:         b.email,
		phone:         b.phone,
		businessHours: b.businessHours,
		address:       b.address,
		guard:         guard.NewConstructorGuard(),
	}
}
