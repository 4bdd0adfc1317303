package queries

import (
	"context"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/core/domain/model/renttruck"

	"gorm.io/gorm"
)

// GetOverdueRentalsQueryHandler reads overdue rentals straight from the tables, bypassing the
// repositories so the customer and truck come back in one round trip.
type GetOverdueRentalsQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueRentalsQueryHandler(db *gorm.DB) GetOverdueRentalsQueryHandler {
	return GetOverdueRentalsQueryHandler{db: db}
}

// Handle returns the overdue rentals ordered by return date, oldest first.
func (h GetOverdueRentalsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueRentalsQuery,
) ([]GetOverdueRentalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rentals := make([]GetOverdueRentalsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.return_date,
			c.id,
			c.first_name,
			c.last_name,
			c.email,
			c.cell_no,
			t.id,
			t.license_plate
		FROM rent_trucks r
		JOIN customers c ON c.id = r.customer_id
		JOIN trucks t ON t.id = r.truck_id
		WHERE r.status = ? AND r.returned = ? AND r.return_date < ?
		ORDER BY r.return_date, r.id
	`, renttruck.Active.String(), false, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueRentalsQueryResponse
		var firstName, lastName string
		var returnDate time.Time

		err = rows.Scan(
			&resp.RentID,
			&returnDate,
			&resp.CustomerID,
			&firstName,
			&lastName,
			&resp.CustomerEmail,
			&resp.CustomerCell,
			&resp.TruckID,
			&resp.LicensePlate,
		)
		if err != nil {
			return nil, err
		}

		resp.ReturnDate = kernel.DateOf(returnDate)
		resp.DaysOverdue = kernel.DaysInclusive(resp.ReturnDate, query.AsOf()) - 1
		resp.CustomerName = firstName + " " + lastName
		rentals = append(rentals, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rentals, nil
}
