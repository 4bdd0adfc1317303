package complaint

import (
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/guard"
)

// Builder accumulates complaint fields. Build does not validate; use NewComplaint for input
// coming from callers and Complaint.Validate before persisting.
type Builder struct {
	id            int
	description   string
	status        Status
	complaintDate time.Time
	customerID    int
	response      string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetID(id int) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetDescription(description string) *Builder {
	b.description = description
	return b
}

func (b *Builder) SetStatus(status Status) *Builder {
	b.status = status
	return b
}

func (b *Builder) SetComplaintDate(date time.Time) *Builder {
	b.complaintDate = kernel.DateOf(date)
	return b
}

func (b *Builder) SetCustomerID(customerID int) *Builder {
	b.customerID = customerID
	return b
}

func (b *Builder) SetResponse(response string) *Builder {
	b.response = response
	return b
}

// Copy seeds the builder with every field of c.
func (b *Builder) Copy(c Complaint) *Builder {
	b.id = c.id
	b.description = c.description
	b.status = c.status
	b.complaintDate = c.complaintDate
	b.customerID = c.customerID
	b.response = c.response
	return b
}

func (b *Builder) Build() Complaint {
	return Complaint{
		id:            b.id,
		description:   b.description,
		status:        b.status,
		complaintDate: b.complaintDate,
		customerID:    b.customerID,
		response:      b.response,
		guard:         guard.NewConstructorGuard(),
	}
}
