// Package trucktype models the categories the fleet is offered in, such as a 4-ton box
// truck or a refrigerated van.
package trucktype

import (
	"errors"
	"fmt"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

// MaxLoadCapacity caps the payload, in tonnes, a truck type may declare.
const MaxLoadCapacity = 60.0

var ErrTruckTypeIsNotConstructed = errors.New("TruckType must be created via NewTruckType or Builder.Build")

type TruckType struct {
	id           int
	name         string
	description  string
	loadCapacity float64

	guard guard.ConstructorGuard
}

func NewTruckType(id int, name, description string, loadCapacity float64) (TruckType, error) {
	if err := validate(id, name, loadCapacity); err != nil {
		return TruckType{}, err
	}

	return NewBuilder().
		SetID(id).
		SetName(name).
		SetDescription(description).
		SetLoadCapacity(loadCapacity).
		Build(), nil
}

func (t TruckType) Validate() error {
	if err := t.guard.Validate(ErrTruckTypeIsNotConstructed); err != nil {
		return err
	}
	return validate(t.id, t.name, t.loadCapacity)
}

func (t TruckType) ID() int               { return t.id }
func (t TruckType) Name() string          { return t.name }
func (t TruckType) Description() string   { return t.description }
func (t TruckType) LoadCapacity() float64 { return t.loadCapacity }

func (t TruckType) Equal(other TruckType) bool {
	return t.id == other.id &&
		t.name == other.name &&
		t.description == other.description &&
		t.loadCapacity == other.loadCapacity
}

func (t TruckType) String() string {
	return fmt.Sprintf("TruckType{id=%d, name=%q, loadCapacity=%.1f}", t.id, t.name, t.loadCapacity)
}

func validate(id int, name string, loadCapacity float64) error {
	var idErr, nameErr, capacityErr error
	if kernel.IsIDInvalid(id) {
		idErr = errs.NewValueIsInvalidErrorWithCause("truckTypeId", fmt.Errorf("%d is not greater than 0", id))
	}
	if kernel.IsBlank(name) {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if loadCapacity < 0 || loadCapacity > MaxLoadCapacity {
		capacityErr = errs.NewValueIsOutOfRangeError("loadCapacity", loadCapacity, 0, MaxLoadCapacity)
	}
	return errors.Join(idErr, nameErr, capacityErr)
}
