package complaint

import (
	"errors"
	"fmt"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint or Builder.Build")

// Complaint is an immutable snapshot of a customer complaint. Changes are made by copying it
// into a Builder, overriding fields and building a new value.
type Complaint struct {
	id            int
	description   string
	status        Status
	complaintDate time.Time
	// customerID is 0 when the complaint was filed with an unknown email
	customerID int
	response   string

	guard guard.ConstructorGuard
}

// NewComplaint files a new complaint. The identifier comes from the repository's NextID;
// status and response always start as Pending and NoResponse.
func NewComplaint(id int, description string, complaintDate time.Time, customerID int) (Complaint, error) {
	if err := errors.Join(
		validateID(id),
		validateDescription(description),
		validateComplaintDate(complaintDate),
		validateCustomerID(customerID),
	); err != nil {
		return Complaint{}, err
	}

	return NewBuilder().
		SetID(id).
		SetDescription(description).
		SetStatus(Pending).
		SetComplaintDate(complaintDate).
		SetCustomerID(customerID).
		SetResponse(NoResponse).
		Build(), nil
}

// Validate checks the complaint was built and that its fields still satisfy the invariants.
func (c Complaint) Validate() error {
	if err := c.guard.Validate(ErrComplaintIsNotConstructed); err != nil {
		return err
	}
	return errors.Join(
		validateID(c.id),
		validateDescription(c.description),
		c.status.Validate(),
		validateComplaintDate(c.complaintDate),
		validateCustomerID(c.customerID),
	)
}

// Respond records the staff response and resolves the complaint.
func (c Complaint) Respond(response string) (Complaint, error) {
	if kernel.IsBlank(response) {
		return Complaint{}, errs.NewValueIsRequiredError("response")
	}
	return NewBuilder().
		Copy(c).
		SetResponse(response).
		SetStatus(Resolved).
		Build(), nil
}

func (c Complaint) ID() int                  { return c.id }
func (c Complaint) Description() string      { return c.description }
func (c Complaint) Status() Status           { return c.status }
func (c Complaint) ComplaintDate() time.Time { return c.complaintDate }
func (c Complaint) CustomerID() int          { return c.customerID }
func (c Complaint) HasCustomer() bool        { return c.customerID != 0 }
func (c Complaint) Response() string         { return c.response }

// Equal compares all fields.
func (c Complaint) Equal(other Complaint) bool {
	return c.id == other.id &&
		c.description == other.description &&
		c.status == other.status &&
		c.complaintDate.Equal(other.complaintDate) &&
		c.customerID == other.customerID &&
		c.response == other.response
}

func (c Complaint) String() string {
	return fmt.Sprintf(
		"Complaint{id=%d, description=%q, status=%q, complaintDate=%s, customerID=%d, response=%q}",
		c.id, c.description, c.status, c.complaintDate.Format(time.DateOnly), c.customerID, c.response,
	)
}

func validateID(id int) error {
	if kernel.IsIDInvalid(id) {
		return errs.NewValueIsInvalidErrorWithCause("complaintId", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func validateDescription(description string) error {
	if kernel.IsBlank(description) {
		return errs.NewValueIsRequiredError("description")
	}
	return nil
}

func validateComplaintDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("complaintDate")
	}
	return nil
}

func validateCustomerID(customerID int) error {
	if customerID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%d is negative", customerID))
	}
	return nil
}
