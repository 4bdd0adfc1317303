package complaint

import (
	"fmt"
	"strings"

	"truckrental/internal/pkg/errs"
)

// Status is the free-text state of a complaint. Pending and Resolved drive the workflow;
// staff may use other labels (for example "In Progress") while a complaint is open.
type Status string

const (
	Pending  Status = "Pending"
	Resolved Status = "Resolved"
)

// NoResponse is the response text of a complaint nobody has answered yet.
const NoResponse = "None"

// Validate rejects empty statuses.
func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

func (s Status) IsResolved() bool {
	return s == Resolved
}

func (s Status) String() string {
	return string(s)
}

// TransitionTo returns next when the move from s is allowed.
//
//	Pending ──> (any open label) ──> Resolved
//	Resolved ──> Resolved only
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if s.IsResolved() && !next.IsResolved() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("a %s complaint cannot move back to %s", s, next),
		)
	}
	return next, nil
}
