package http

import (
	"net/http"

	"truckrental/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ReadCustomerByEmail handles GET /api/v1/customers/email/:email.
func (s *Server) ReadCustomerByEmail(c echo.Context) error {
	email, err := pathEmail(c)
	if err != nil {
		return err
	}

	found, err := s.services.Customers.ReadByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerBody(found))
}

// GetAccidentReportsByCustomerID handles GET /api/v1/accident-reports/customer/:id.
func (s *Server) GetAccidentReportsByCustomerID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	reports, err := s.services.AccidentReports.GetReportsByCustomerID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(reports, accidentReportBody))
}

// GetRentalsByCustomerID handles GET /api/v1/rentals/customer/:id.
func (s *Server) GetRentalsByCustomerID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	rentals, err := s.services.Rentals.GetRentalsByCustomerID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(rentals, rentalBody))
}

// ReturnTruck handles POST /api/v1/rentals/return/:id. Without a returnedOn date the truck
// is returned today.
func (s *Server) ReturnTruck(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var body RentalReturnBody
	if err = c.Bind(&body); err != nil {
		return err
	}
	returnedOn, err := parseDate("returnedOn", body.ReturnedOn)
	if err != nil {
		return err
	}
	if returnedOn.IsZero() {
		returnedOn = s.clock()
	}

	returned, err := s.services.Rentals.ReturnTruck(c.Request().Context(), id, returnedOn)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rentalBody(returned))
}

// CancelRental handles POST /api/v1/rentals/cancel/:id. The body and its reason are optional.
func (s *Server) CancelRental(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var body RentalCancelBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	cancelled, err := s.services.Rentals.CancelRental(c.Request().Context(), id, body.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rentalBody(cancelled))
}

// GetOverdueRentals handles GET /api/v1/rentals/overdue?asOf=YYYY-MM-DD.
func (s *Server) GetOverdueRentals(c echo.Context) error {
	asOf, err := parseDate("asOf", c.QueryParam("asOf"))
	if err != nil {
		return err
	}
	if asOf.IsZero() {
		asOf = s.clock()
	}

	query, err := queries.NewGetOverdueRentalsQuery(asOf)
	if err != nil {
		return err
	}
	overdue, err := s.services.OverdueRentals.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(overdue, overdueRentalBody))
}

// GetFleetSummary handles GET /api/v1/fleet/summary.
func (s *Server) GetFleetSummary(c echo.Context) error {
	summary, err := s.services.FleetSummary.Handle(c.Request().Context(), queries.NewGetFleetSummaryQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, FleetSummaryBody{
		TotalTrucks:     summary.TotalTrucks,
		AvailableTrucks: summary.AvailableTrucks,
		ActiveRentals:   summary.ActiveRentals,
		OverdueRentals:  summary.OverdueRentals,
	})
}
