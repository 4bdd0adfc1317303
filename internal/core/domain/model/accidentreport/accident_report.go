// Package accidentreport records accidents involving a rented truck.
//
// A report references the truck and the customer who had it; both must exist when the report
// is stored, which the database enforces with foreign keys.
package accidentreport

import (
	"errors"
	"fmt"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var ErrAccidentReportIsNotConstructed = errors.New("AccidentReport must be created via NewAccidentReport or Builder.Build")

type AccidentReport struct {
	id           int
	accidentDate time.Time
	description  string
	location     string
	damageCost   float64
	truckID      int
	customerID   int

	guard guard.ConstructorGuard
}

func NewAccidentReport(
	id int,
	accidentDate time.Time,
	description, location string,
	damageCost float64,
	truckID, customerID int,
) (AccidentReport, error) {
	if err := validate(id, accidentDate, description, location, damageCost, truckID, customerID); err != nil {
		return AccidentReport{}, err
	}

	return NewBuilder().
		SetID(id).
		SetAccidentDate(accidentDate).
		SetDescription(description).
		SetLocation(location).
		SetDamageCost(damageCost).
		SetTruckID(truckID).
		SetCustomerID(customerID).
		Build(), nil
}

func (a AccidentReport) Validate() error {
	if err := a.guard.Validate(ErrAccidentReportIsNotConstructed); err != nil {
		return err
	}
	return validate(a.id, a.accidentDate, a.description, a.location, a.damageCost, a.truckID, a.customerID)
}

func (a AccidentReport) ID() int                 { return a.id }
func (a AccidentReport) AccidentDate() time.Time { return a.accidentDate }
func (a AccidentReport) Description() string     { return a.description }
func (a AccidentReport) Location() string        { return a.location }
func (a AccidentReport) DamageCost() float64     { return a.damageCost }
func (a AccidentReport) TruckID() int            { return a.truckID }
func (a AccidentReport) CustomerID() int         { return a.customerID }

func (a AccidentReport) Equal(other AccidentReport) bool {
	return a.id == other.id &&
		a.accidentDate.Equal(other.accidentDate) &&
		a.description == other.description &&
		a.location == other.location &&
		a.damageCost == other.damageCost &&
		a.truckID == other.truckID &&
		a.customerID == other.customerID
}

func (a AccidentReport) String() string {
	return fmt.Sprintf(
		"AccidentReport{id=%d, accidentDate=%s, description=%q, location=%q, damageCost=%.2f, truckID=%d, customerID=%d}",
		a.id, a.accidentDate.Format(time.DateOnly), a.description, a.location, a.damageCost, a.truckID, a.customerID,
	)
}

func validate(
	id int,
	accidentDate time.Time,
	description, location string,
	damageCost float64,
	truckID, customerID int,
) error {
	var idErr, dateErr, descriptionErr, locationErr, costErr, truckErr, customerErr error
	if kernel.IsIDInvalid(id) {
		idErr = errs.NewValueIsInvalidErrorWithCause("accidentReportId", fmt.Errorf("%d is not greater than 0", id))
	}
	if accidentDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("accidentDate")
	}
	if kernel.IsBlank(description) {
		descriptionErr = errs.NewValueIsRequiredError("description")
	}
	if kernel.IsBlank(location) {
		locationErr = errs.NewValueIsRequiredError("location")
	}
	if damageCost < 0 {
		costErr = errs.NewValueIsInvalidErrorWithCause("damageCost", fmt.Errorf("%.2f is negative", damageCost))
	}
	if kernel.IsIDInvalid(truckID) {
		truckErr = errs.NewValueIsInvalidErrorWithCause("truckId", fmt.Errorf("%d is not greater than 0", truckID))
	}
	if kernel.IsIDInvalid(customerID) {
		customerErr = errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%d is not greater than 0", customerID))
	}
	return errors.Join(idErr, dateErr, descriptionErr, locationErr, costErr, truckErr, customerErr)
}
