// Package insurance models the policies that cover trucks in the fleet.
package insurance

import (
	"errors"
	"fmt"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var ErrInsuranceIsNotConstructed = errors.New("Insurance must be created via NewInsurance or Builder.Build")

type Insurance struct {
	id             int
	insuranceType  string
	provider       string
	policyNumber   string
	coverageAmount float64
	startDate      time.Time
	truckID        int

	guard guard.ConstructorGuard
}

func NewInsurance(
	id int,
	insuranceType, provider, policyNumber string,
	coverageAmount float64,
	startDate time.Time,
	truckID int,
) (Insurance, error) {
	if err := validate(id, insuranceType, provider, policyNumber, coverageAmount, startDate, truckID); err != nil {
		return Insurance{}, err
	}

	return NewBuilder().
		SetID(id).
		SetInsuranceType(insuranceType).
		SetProvider(provider).
		SetPolicyNumber(policyNumber).
		SetCoverageAmount(coverageAmount).
		SetStartDate(startDate).
		SetTruckID(truckID).
		Build(), nil
}

func (i Insurance) Validate() error {
	if err := i.guard.Validate(ErrInsuranceIsNotConstructed); err != nil {
		return err
	}
	return validate(i.id, i.insuranceType, i.provider, i.policyNumber, i.coverageAmount, i.startDate, i.truckID)
}

func (i Insurance) ID() int                 { return i.id }
func (i Insurance) InsuranceType() string   { return i.insuranceType }
func (i Insurance) Provider() string        { return i.provider }
func (i Insurance) PolicyNumber() string    { return i.policyNumber }
func (i Insurance) CoverageAmount() float64 { return i.coverageAmount }
func (i Insurance) StartDate() time.Time    { return i.startDate }
func (i Insurance) TruckID() int            { return i.truckID }

// IsActiveOn reports whether the policy has started by the given day.
func (i Insurance) IsActiveOn(day time.Time) bool {
	return !i.startDate.After(kernel.DateOf(day))
}

func (i Insurance) Equal(other Insurance) bool {
	return i.id == other.id &&
		i.insuranceType == other.insuranceType &&
		i.provider == other.provider &&
		i.policyNumber == other.policyNumber &&
		i.coverageAmount == other.coverageAmount &&
		i.startDate.Equal(other.startDate) &&
		i.truckID == other.truckID
}

func (i Insurance) String() string {
	return fmt.Sprintf(
		"Insurance{id=%d, insuranceType=%q, provider=%q, policyNumber=%q, coverageAmount=%.2f, startDate=%s, truckID=%d}",
		i.id, i.insuranceType, i.provider, i.policyNumber, i.coverageAmount, i.startDate.Format(time.DateOnly), i.truckID,
	)
}

func validate(
	id int,
	insuranceType, provider, policyNumber string,
	coverageAmount float64,
	startDate time.Time,
	truckID int,
) error {
	var idErr, typeErr, providerErr, policyErr, coverageErr, startErr, truckErr error
	if kernel.IsIDInvalid(id) {
		idErr = errs.NewValueIsInvalidErrorWithCause("insuranceId", fmt.Errorf("%d is not greater than 0", id))
	}
	if kernel.IsBlank(insuranceType) {
		typeErr = errs.NewValueIsRequiredError("insuranceType")
	}
	if kernel.IsBlank(provider) {
		providerErr = errs.NewValueIsRequiredError("provider")
	}
	if kernel.IsBlank(policyNumber) {
		policyErr = errs.NewValueIsRequiredError("policyNumber")
	}
	if coverageAmount <= 0 {
		coverageErr = errs.NewValueIsInvalidErrorWithCause(
			"coverageAmount", fmt.Errorf("%.2f is not greater than 0", coverageAmount))
	}
	if startDate.IsZero() {
		startErr = errs.NewValueIsRequiredError("startDate")
	}
	if kernel.IsIDInvalid(truckID) {
		truckErr = errs.NewValueIsInvalidErrorWithCause("truckId", fmt.Errorf("%d is not greater than 0", truckID))
	}
	return errors.Join(idErr, typeErr, providerErr, policyErr, coverageErr, startErr, truckErr)
}
