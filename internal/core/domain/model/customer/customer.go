// Package customer models the people who rent trucks. Customers are looked up by email when
// they file complaints.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or Builder.Build")

type Customer struct {
	id        int
	firstName string
	lastName  string
	email     string
	cellNo    string

	guard guard.ConstructorGuard
}

// NewCustomer validates and builds a customer. The email is stored trimmed and lower-cased
// so lookups by email are case-insensitive.
func NewCustomer(id int, firstName, lastName, email, cellNo string) (Customer, error) {
	if err := validate(id, firstName, lastName, email, cellNo); err != nil {
		return Customer{}, err
	}

	return NewBuilder().
		SetID(id).
		SetFirstName(firstName).
		SetLastName(lastName).
		SetEmail(NormalizeEmail(email)).
		SetCellNo(cellNo).
		Build(), nil
}

// NormalizeEmail is the canonical form emails are stored and queried in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c Customer) Validate() error {
	if err := c.guard.Validate(ErrCustomerIsNotConstructed); err != nil {
		return err
	}
	return validate(c.id, c.firstName, c.lastName, c.email, c.cellNo)
}

func (c Customer) ID() int           { return c.id }
func (c Customer) FirstName() string { return c.firstName }
func (c Customer) LastName() string  { return c.lastName }
func (c Customer) Email() string     { return c.email }
func (c Customer) CellNo() string    { return c.cellNo }

func (c Customer) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

func (c Customer) Equal(other Customer) bool {
	return c.id == other.id &&
		c.firstName == other.firstName &&
		c.lastName == other.lastName &&
		c.email == other.email &&
		c.cellNo == other.cellNo
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer{id=%d, firstName=%q, lastName=%q, email=%q, cellNo=%q}",
		c.id, c.firstName, c.lastName, c.email, c.cellNo)
}

func validate(id int, firstName, lastName, email, cellNo string) error {
	var idErr, firstNameErr, lastNameErr, emailErr, cellNoErr error
	if kernel.IsIDInvalid(id) {
		idErr = errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%d is not greater than 0", id))
	}
	if kernel.IsBlank(firstName) {
		firstNameErr = errs.NewValueIsRequiredError("firstName")
	}
	if kernel.IsBlank(lastName) {
		lastNameErr = errs.NewValueIsRequiredError("lastName")
	}
	if kernel.IsEmailInvalid(email) {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	if kernel.IsBlank(cellNo) {
		cellNoErr = errs.NewValueIsRequiredError("cellNo")
	}
	return errors.Join(idErr, firstNameErr, lastNameErr, emailErr, cellNoErr)
}
