package queries

import (
	"errors"

	"truckrental/internal/pkg/guard"
)

var (
	ErrGetFleetSummaryQueryIsNotConstructed = errors.New(
		"GetFleetSummaryQuery must be created via NewGetFleetSummaryQuery constructor",
	)
)

// GetFleetSummaryQuery counts trucks by availability and rentals by status.
type GetFleetSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetSummaryQuery() GetFleetSummaryQuery {
	return GetFleetSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFleetSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetSummaryQueryIsNotConstructed)
}

type GetFleetSummaryQueryResponse struct {
	TotalTrucks     int
	AvailableTrucks int
	ActiveRentals   int
	OverdueRentals  int
}
