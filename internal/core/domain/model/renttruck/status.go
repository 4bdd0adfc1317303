package renttruck

import (
	"fmt"

	"truckrental/internal/pkg/errs"
)

type Status string

const (
	Active    Status = "ACTIVE"
	Completed Status = "COMPLETED"
	Cancelled Status = "CANCELLED"
)

// ParseStatus accepts the three stored spellings.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Active, Completed, Cancelled:
		return Status(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("unknown rental status %q", s))
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// Complete moves an ACTIVE rental to COMPLETED.
func (s Status) Complete() (Status, error) {
	if s != Active {
		return "", newTransitionError(s, Completed)
	}
	return Completed, nil
}

// Cancel moves an ACTIVE rental to CANCELLED.
func (s Status) Cancel() (Status, error) {
	if s != Active {
		return "", newTransitionError(s, Cancelled)
	}
	return Cancelled, nil
}

func newTransitionError(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot change rental status from %s to %s", from, to),
	)
}
