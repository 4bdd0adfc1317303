// Package truck models the rentable fleet.
package truck

import (
	"errors"
	"fmt"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

// MaxDailyRate caps the daily rental rate accepted for a truck.
const MaxDailyRate = 100_000.0

var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck or Builder.Build")

type Truck struct {
	id           int
	vin          string
	model        string
	licensePlate string
	dailyRate    float64
	available    bool

	guard guard.ConstructorGuard
}

func NewTruck(id int, vin, model, licensePlate string, dailyRate float64, available bool) (Truck, error) {
	if err := validate(id, vin, model, licensePlate, dailyRate); err != nil {
		return Truck{}, err
	}

	return NewBuilder().
		SetID(id).
		SetVIN(vin).
		SetModel(model).
		SetLicensePlate(licensePlate).
		SetDailyRate(dailyRate).
		SetAvailable(available).
		Build(), nil
}

func (t Truck) Validate() error {
	if err := t.guard.Validate(ErrTruckIsNotConstructed); err != nil {
		return err
	}
	return validate(t.id, t.vin, t.model, t.licensePlate, t.dailyRate)
}

func (t Truck) ID() int              { return t.id }
func (t Truck) VIN() string          { return t.vin }
func (t Truck) Model() string        { return t.model }
func (t Truck) LicensePlate() string { return t.licensePlate }
func (t Truck) DailyRate() float64   { return t.dailyRate }
func (t Truck) Available() bool      { return t.available }

// HasRate is false for trucks whose price is negotiated per rental.
func (t Truck) HasRate() bool {
	return t.dailyRate > 0
}

// CostFor prices a rental from start to end, both days included.
func (t Truck) CostFor(start, end time.Time) float64 {
	return t.dailyRate * float64(kernel.DaysInclusive(start, end))
}

func (t Truck) Equal(other Truck) bool {
	return t.id == other.id &&
		t.vin == other.vin &&
		t.model == other.model &&
		t.licensePlate == other.licensePlate &&
		t.dailyRate == other.dailyRate &&
		t.available == other.available
}

func (t Truck) String() string {
	return fmt.Sprintf("Truck{id=%d, vin=%q, model=%q, licensePlate=%q, dailyRate=%.2f, available=%t}",
		t.id, t.vin, t.model, t.licensePlate, t.dailyRate, t.available)
}

func validate(id int, vin, model, licensePlate string, dailyRate float64) error {
	var idErr, vinErr, modelErr, plateErr, rateErr error
	if kernel.IsIDInvalid(id) {
		idErr = errs.NewValueIsInvalidErrorWithCause("truckId", fmt.Errorf("%d is not greater than 0", id))
	}
	if kernel.IsBlank(vin) {
		vinErr = errs.NewValueIsRequiredError("vin")
	}
	if kernel.IsBlank(model) {
		modelErr = errs.NewValueIsRequiredError("model")
	}
	if kernel.IsBlank(licensePlate) {
		plateErr = errs.NewValueIsRequiredError("licensePlate")
	}
	if dailyRate < 0 || dailyRate > MaxDailyRate {
		rateErr = errs.NewValueIsOutOfRangeError("dailyRate", dailyRate, 0, MaxDailyRate)
	}
	return errors.Join(idErr, vinErr, modelErr, plateErr, rateErr)
}
