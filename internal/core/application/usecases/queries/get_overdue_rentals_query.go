package queries

import (
	"errors"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
	"truckrental/internal/pkg/guard"
)

var (
	ErrGetOverdueRentalsQueryIsNotConstructed = errors.New(
		"GetOverdueRentalsQuery must be created via NewGetOverdueRentalsQuery constructor",
	)
)

// GetOverdueRentalsQuery lists ACTIVE, unreturned rentals whose return date is before AsOf,
// together with who has the truck.
//
// Example:
//
//	query, err := NewGetOverdueRentalsQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
type GetOverdueRentalsQuery struct {
	asOf  time.Time
	guard guard.ConstructorGuard
}

// NewGetOverdueRentalsQuery truncates asOf to its calendar day.
func NewGetOverdueRentalsQuery(asOf time.Time) (GetOverdueRentalsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueRentalsQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetOverdueRentalsQuery{
		asOf:  kernel.DateOf(asOf),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOverdueRentalsQuery) AsOf() time.Time {
	return q.asOf
}

func (q GetOverdueRentalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueRentalsQueryIsNotConstructed)
}

// GetOverdueRentalsQueryResponse is one overdue rental joined with its customer and truck.
type GetOverdueRentalsQueryResponse struct {
	RentID        int
	ReturnDate    time.Time
	DaysOverdue   int
	CustomerID    int
	CustomerName  string
	CustomerEmail string
	CustomerCell  string
	TruckID       int
	LicensePlate  string
}
