package renttruck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var ErrRentTruckIsNotConstructed = errors.New("RentTruck must be created via NewRentTruck or Builder.Build")

// RentTruck is an immutable rental record. Branch, truck and customer are referenced by id.
type RentTruck struct {
	id              int
	rentDate        time.Time
	returnDate      time.Time
	totalCost       float64
	paymentMade     bool
	returned        bool
	customerID      int
	truckID         int
	pickUpBranchID  int
	dropOffBranchID int
	status          Status

	cancellationReason string

	guard guard.ConstructorGuard
}

// NewRentTruck books a rental. The status argument is accepted for symmetry with the stored
// record but ignored: new rentals are always Active.
func NewRentTruck(
	id int,
	rentDate, returnDate time.Time,
	totalCost float64,
	paymentMade, returned bool,
	customerID, truckID, pickUpBranchID, dropOffBranchID int,
	_ Status,
) (RentTruck, error) {
	if err := errors.Join(
		validateReference("rentId", id),
		validateReturnDate(returnDate),
		validateDateOrder(rentDate, returnDate),
		validateTotalCost(totalCost),
		validateReference("customerId", customerID),
		validateReference("truckId", truckID),
		validateReference("pickUpBranchId", pickUpBranchID),
		validateReference("dropOffBranchId", dropOffBranchID),
	); err != nil {
		return RentTruck{}, err
	}

	return NewBuilder().
		SetID(id).
		SetRentDate(rentDate).
		SetReturnDate(returnDate).
		SetTotalCost(totalCost).
		SetPaymentMade(paymentMade).
		SetReturned(returned).
		SetCustomerID(customerID).
		SetTruckID(truckID).
		SetPickUpBranchID(pickUpBranchID).
		SetDropOffBranchID(dropOffBranchID).
		SetStatus(Active).
		Build(), nil
}

func (r RentTruck) Validate() error {
	if err := r.guard.Validate(ErrRentTruckIsNotConstructed); err != nil {
		return err
	}
	if _, err := ParseStatus(string(r.status)); err != nil {
		return err
	}
	return errors.Join(
		validateReference("rentId", r.id),
		validateReturnDate(r.returnDate),
		validateDateOrder(r.rentDate, r.returnDate),
		validateTotalCost(r.totalCost),
		validateReference("customerId", r.customerID),
		validateReference("truckId", r.truckID),
		validateReference("pickUpBranchId", r.pickUpBranchID),
		validateReference("dropOffBranchId", r.dropOffBranchID),
	)
}

// Return records the truck coming back on returnedOn and completes the rental.
// A negative totalCost keeps the booked cost.
func (r RentTruck) Return(returnedOn time.Time, totalCost float64) (RentTruck, error) {
	if returnedOn.IsZero() {
		return RentTruck{}, errs.NewValueIsRequiredError("returnDate")
	}
	if err := validateDateOrder(r.rentDate, returnedOn); err != nil {
		return RentTruck{}, err
	}
	status, err := r.status.Complete()
	if err != nil {
		return RentTruck{}, err
	}

	b := NewBuilder().
		Copy(r).
		SetReturned(true).
		SetReturnDate(returnedOn).
		SetStatus(status)
	if totalCost >= 0 {
		b.SetTotalCost(totalCost)
	}
	return b.Build(), nil
}

// Cancel moves an ACTIVE rental to CANCELLED, recording the trimmed reason when one is given.
func (r RentTruck) Cancel(reason string) (RentTruck, error) {
	status, err := r.status.Cancel()
	if err != nil {
		return RentTruck{}, err
	}
	return NewBuilder().
		Copy(r).
		SetStatus(status).
		SetCancellationReason(strings.TrimSpace(reason)).
		Build(), nil
}

func (r RentTruck) ID() int                { return r.id }
func (r RentTruck) RentDate() time.Time    { return r.rentDate }
func (r RentTruck) ReturnDate() time.Time  { return r.returnDate }
func (r RentTruck) TotalCost() float64     { return r.totalCost }
func (r RentTruck) PaymentMade() bool      { return r.paymentMade }
func (r RentTruck) Returned() bool         { return r.returned }
func (r RentTruck) CustomerID() int        { return r.customerID }
func (r RentTruck) TruckID() int           { return r.truckID }
func (r RentTruck) PickUpBranchID() int    { return r.pickUpBranchID }
func (r RentTruck) DropOffBranchID() int   { return r.dropOffBranchID }
func (r RentTruck) Status() Status         { return r.status }

// CancellationReason is empty unless the rental was cancelled with a reason.
func (r RentTruck) CancellationReason() string { return r.cancellationReason }

func (r RentTruck) Equal(other RentTruck) bool {
	return r.id == other.id &&
		r.rentDate.Equal(other.rentDate) &&
		r.returnDate.Equal(other.returnDate) &&
		r.totalCost == other.totalCost &&
		r.paymentMade == other.paymentMade &&
		r.returned == other.returned &&
		r.customerID == other.customerID &&
		r.truckID == other.truckID &&
		r.pickUpBranchID == other.pickUpBranchID &&
		r.dropOffBranchID == other.dropOffBranchID &&
		r.status == other.status &&
		r.cancellationReason == other.cancellationReason
}

func (r RentTruck) String() string {
	return fmt.Sprintf(
		"RentTruck{id=%d, rentDate=%s, returnDate=%s, totalCost=%.2f, paymentMade=%t, returned=%t, "+
			"customerID=%d, truckID=%d, pickUpBranchID=%d, dropOffBranchID=%d, status=%s, cancellationReason=%q}",
		r.id, formatDate(r.rentDate), formatDate(r.returnDate), r.totalCost, r.paymentMade, r.returned,
		r.customerID, r.truckID, r.pickUpBranchID, r.dropOffBranchID, r.status, r.cancellationReason,
	)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func validateReference(name string, id int) error {
	if kernel.IsIDInvalid(id) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

func validateReturnDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("returnDate")
	}
	return nil
}

// validateDateOrder rejects a return date before the rent date. A missing rent date is
// filled in by the service and is not checked here.
func validateDateOrder(rentDate, returnDate time.Time) error {
	if rentDate.IsZero() || returnDate.IsZero() {
		return nil
	}
	if kernel.DateOf(returnDate).Before(kernel.DateOf(rentDate)) {
		return errs.NewValueIsInvalidErrorWithCause("returnDate",
			fmt.Errorf("%s is before the rent date %s", formatDate(returnDate), formatDate(rentDate)))
	}
	return nil
}

func validateTotalCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCost", fmt.Errorf("%.2f is negative", cost))
	}
	return nil
}
