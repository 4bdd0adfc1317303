package renttruck

import "time"

// Changes is a partial update of a stored rental. Zero values and a nil PaymentMade keep
// the stored value. Status is only compared against the stored one: rentals change status
// through Return and Cancel.
type Changes struct {
	RentDate        time.Time
	ReturnDate      time.Time
	TotalCost       float64
	PaymentMade     *bool
	CustomerID      int
	TruckID         int
	PickUpBranchID  int
	DropOffBranchID int
	Status          Status
}
