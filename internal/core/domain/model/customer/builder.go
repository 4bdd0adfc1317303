package customer

import "truckrental/internal/pkg/guard"

type Builder struct {
	id        int
	firstName string
	lastName  string
	email     string
	cellNo    string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetFirstName(firstName string) *Builder {
	b.firstName = firstName
	return b
}

func (b *Builder) SetLastName(lastName string) *Builder {
	b.lastName = lastName
	return b
}

func (b *Builder) SetEmail(email string) *Builder {
	b.email = email
	return b
}

func (b *Builder) SetCellNo(cellNo string) *Builder {
	b.cellNo = cellNo
	return b
}

func (b *Builder) Copy(c Customer) *Builder {
	b.id = c.id
	b.firstName = c.firstName
	b.lastName = c.lastName
	b.email = c.email
	b.cellNo = c.cellNo
	return b
}

func (b *Builder) Build() Customer {
	return Customer{
		id:        b.id,
		firstName: b.firstName,
		lastName:  b.lastName,
		email:     b.email,
		cellNo:    b.cellNo,
		guard:     guard.NewConstructorGuard(),
	}
}
