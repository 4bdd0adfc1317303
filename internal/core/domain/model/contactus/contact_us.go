// Package contactus holds the company's published contact details.
package contactus

import (
	"errors"
	"fmt"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var ErrContactUsIsNotConstructed = errors.New("ContactUs must be created via NewContactUs or Builder.Build")

type ContactUs struct {
	id            int
	email         string
	phone         string
	businessHours string
	address       string

	guard guard.ConstructorGuard
}

// NewContactUs validates every field: id, email grammar, phone, business hours and street address.
func NewContactUs(id int, email, phone, businessHours, address string) (ContactUs, error) {
	if err := validate(id, email, phone, businessHours, address); err != nil {
		return ContactUs{}, err
	}

	return NewBuilder().
		SetID(id).
		SetEmail(email).
		SetPhone(phone).
		SetBusinessHours(businessHours).
		SetAddress(address).
		Build(), nil
}

func (c ContactUs) Validate() error {
	if err := c.guard.Validate(ErrContactUsIsNotConstructed); err != nil {
		return err
	}
	return validate(c.id, c.email, c.phone, c.businessHours, c.address)
}

func (c ContactUs) ID() int               { return c.id }
func (c ContactUs) Email() string         { return c.email }
func (c ContactUs) Phone() string         { return c.phone }
func (c ContactUs) BusinessHours() string { return c.businessHours }
func (c ContactUs) Address() string       { return c.address }

func (c ContactUs) Equal(other ContactUs) bool {
	return c.id == other.id &&
		c.email == other.email &&
		c.phone == other.phone &&
		c.businessHours == other.businessHours &&
		c.address == other.address
}

func (c ContactUs) String() string {
	return fmt.Sprintf("ContactUs{id=%d, email=%q, phone=%q, businessHours=%q, address=%q}",
		c.id, c.email, c.phone, c.businessHours, c.address)
}

func validate(id int, email, phone, businessHours, address string) error {
	var idErr, emailErr, phoneErr, hoursErr, addressErr error
	if kernel.IsIDInvalid(id) {
		idErr = errs.NewValueIsInvalidErrorWithCause("contactUsId", fmt.Errorf("%d is not greater than 0", id))
	}
	if kernel.IsEmailInvalid(email) {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	if kernel.IsBlank(phone) {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	if kernel.IsBlank(businessHours) {
		hoursErr = errs.NewValueIsRequiredError("businessHours")
	}
	if kernel.IsAddressInvalid(address) {
		addressErr = errs.NewValueIsInvalidErrorWithCause("address", fmt.Errorf("%q is not a street address", address))
	}
	return errors.Join(idErr, emailErr, phoneErr, hoursErr, addressErr)
}
