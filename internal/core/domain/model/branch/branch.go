// Package branch models the depots where rentals are picked up and dropped off.
package branch

import (
	"errors"
	"fmt"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or Builder.Build")

type Branch struct {
	id      int
	name    string
	address string

	guard guard.ConstructorGuard
}

func NewBranch(id int, name, address string) (Branch, error) {
	if err := validate(id, name, address); err != nil {
		return Branch{}, err
	}
	return NewBuilder().SetID(id).SetName(name).SetAddress(address).Build(), nil
}

func (b Branch) Validate() error {
	if err := b.guard.Validate(ErrBranchIsNotConstructed); err != nil {
		return err
	}
	return validate(b.id, b.name, b.address)
}

func (b Branch) ID() int         { return b.id }
func (b Branch) Name() string    { return b.name }
func (b Branch) Address() string { return b.address }

func (b Branch) Equal(other Branch) bool {
	return b.id == other.id && b.name == other.name && b.address == other.address
}

func (b Branch) String() string {
	return fmt.Sprintf("Branch{id=%d, name=%q, address=%q}", b.id, b.name, b.address)
}

func validate(id int, name, address string) error {
	var idErr, nameErr, addressErr error
	if kernel.IsIDInvalid(id) {
		idErr = errs.NewValueIsInvalidErrorWithCause("branchId", fmt.Errorf("%d is not greater than 0", id))
	}
	if kernel.IsBlank(name) {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if kernel.IsAddressInvalid(address) {
		addressErr = errs.NewValueIsInvalidErrorWithCause("address", fmt.Errorf("%q is not a street address", address))
	}
	return errors.Join(idErr, nameErr, addressErr)
}
