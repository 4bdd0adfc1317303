package http

import (
	"fmt"
	"time"

	"truckrental/internal/core/application/usecases/queries"
	"truckrental/internal/core/domain/model/accidentreport"
	"truckrental/internal/core/domain/model/branch"
	"truckrental/internal/core/domain/model/complaint"
	"truckrental/internal/core/domain/model/contactus"
	"truckrental/internal/core/domain/model/customer"
	"truckrental/internal/core/domain/model/insurance"
	"truckrental/internal/core/domain/model/renttruck"
	"truckrental/internal/core/domain/model/truck"
	"truckrental/internal/core/domain/model/trucktype"
	"truckrental/internal/pkg/errs"
)

// Request bodies become drafts: entities without an id that the services validate and
// complete. Fields left out of an update body keep their stored value. Boolean fields are
// pointers so an omitted flag can be told apart from false.

// parseDate reads a YYYY-MM-DD value. Empty means "not supplied".
func parseDate(param, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a YYYY-MM-DD date", value))
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

type CustomerBody struct {
	ID        int    `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CellNo    string `json:"cellNo"`
}

func (b CustomerBody) draft() (customer.Customer, error) {
	return customer.NewBuilder().
		SetFirstName(b.FirstName).
		SetLastName(b.LastName).
		SetEmail(b.Email).
		SetCellNo(b.CellNo).
		Build(), nil
}

func customerBody(c customer.Customer) CustomerBody {
	return CustomerBody{
		ID:        c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Email:     c.Email(),
		CellNo:    c.CellNo(),
	}
}

type TruckBody struct {
	ID           int     `json:"id,omitempty"`
	VIN          string  `json:"vin"`
	Model        string  `json:"model"`
	LicensePlate string  `json:"licensePlate"`
	DailyRate    float64 `json:"dailyRate"`
	Available    *bool   `json:"available"`
}

// draft treats a truck added without an availability flag as available.
func (b TruckBody) draft() (truck.Truck, error) {
	available := true
	if b.Available != nil {
		available = *b.Available
	}
	return truck.NewBuilder().
		SetVIN(b.VIN).
		SetModel(b.Model).
		SetLicensePlate(b.LicensePlate).
		SetDailyRate(b.DailyRate).
		SetAvailable(available).
		Build(), nil
}

func (b TruckBody) changes() (truck.Changes, error) {
	return truck.Changes{
		VIN:          b.VIN,
		Model:        b.Model,
		LicensePlate: b.LicensePlate,
		DailyRate:    b.DailyRate,
		Available:    b.Available,
	}, nil
}

func truckBody(t truck.Truck) TruckBody {
	available := t.Available()
	return TruckBody{
		ID:           t.ID(),
		VIN:          t.VIN(),
		Model:        t.Model(),
		LicensePlate: t.LicensePlate(),
		DailyRate:    t.DailyRate(),
		Available:    &available,
	}
}

type TruckTypeBody struct {
	ID           int     `json:"id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	LoadCapacity float64 `json:"loadCapacity"`
}

func (b TruckTypeBody) draft() (trucktype.TruckType, error) {
	return trucktype.NewBuilder().
		SetName(b.Name).
		SetDescription(b.Description).
		SetLoadCapacity(b.LoadCapacity).
		Build(), nil
}

func truckTypeBody(t trucktype.TruckType) TruckTypeBody {
	return TruckTypeBody{
		ID:           t.ID(),
		Name:         t.Name(),
		Description:  t.Description(),
		LoadCapacity: t.LoadCapacity(),
	}
}

type BranchBody struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (b BranchBody) draft() (branch.Branch, error) {
	return branch.NewBuilder().
		SetName(b.Name).
		SetAddress(b.Address).
		Build(), nil
}

func branchBody(br branch.Branch) BranchBody {
	return BranchBody{ID: br.ID(), Name: br.Name(), Address: br.Address()}
}

type InsuranceBody struct {
	ID             int     `json:"id,omitempty"`
	InsuranceType  string  `json:"insuranceType"`
	Provider       string  `json:"provider"`
	PolicyNumber   string  `json:"policyNumber"`
	CoverageAmount float64 `json:"coverageAmount"`
	StartDate      string  `json:"startDate,omitempty"`
	TruckID        int     `json:"truckId"`
}

func (b InsuranceBody) draft() (insurance.Insurance, error) {
	start, err := parseDate("startDate", b.StartDate)
	if err != nil {
		return insurance.Insurance{}, err
	}
	return insurance.NewBuilder().
		SetInsuranceType(b.InsuranceType).
		SetProvider(b.Provider).
		SetPolicyNumber(b.PolicyNumber).
		SetCoverageAmount(b.CoverageAmount).
		SetStartDate(start).
		SetTruckID(b.TruckID).
		Build(), nil
}

func insuranceBody(i insurance.Insurance) InsuranceBody {
	return InsuranceBody{
		ID:             i.ID(),
		InsuranceType:  i.InsuranceType(),
		Provider:       i.Provider(),
		PolicyNumber:   i.PolicyNumber(),
		CoverageAmount: i.CoverageAmount(),
		StartDate:      formatDate(i.StartDate()),
		TruckID:        i.TruckID(),
	}
}

type ContactUsBody struct {
	ID            int    `json:"id,omitempty"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BusinessHours string `json:"businessHours"`
	Address       string `json:"address"`
}

func (b ContactUsBody) draft() (contactus.ContactUs, error) {
	return contactus.NewBuilder().
		SetEmail(b.Email).
		SetPhone(b.Phone).
		SetBusinessHours(b.BusinessHours).
		SetAddress(b.Address).
		Build(), nil
}

func contactUsBody(c contactus.ContactUs) ContactUsBody {
	return ContactUsBody{
		ID:            c.ID(),
		Email:         c.Email(),
		Phone:         c.Phone(),
		BusinessHours: c.BusinessHours(),
		Address:       c.Address(),
	}
}

type AccidentReportBody struct {
	ID           int     `json:"id,omitempty"`
	AccidentDate string  `json:"accidentDate,omitempty"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	DamageCost   float64 `json:"damageCost"`
	TruckID      int     `json:"truckId"`
	CustomerID   int     `json:"customerId"`
}

func (b AccidentReportBody) draft() (accidentreport.AccidentReport, error) {
	date, err := parseDate("accidentDate", b.AccidentDate)
	if err != nil {
		return accidentreport.AccidentReport{}, err
	}
	return accidentreport.NewBuilder().
		SetAccidentDate(date).
		SetDescription(b.Description).
		SetLocation(b.Location).
		SetDamageCost(b.DamageCost).
		SetTruckID(b.TruckID).
		SetCustomerID(b.CustomerID).
		Build(), nil
}

func accidentReportBody(a accidentreport.AccidentReport) AccidentReportBody {
	return AccidentReportBody{
		ID:           a.ID(),
		AccidentDate: formatDate(a.AccidentDate()),
		Description:  a.Description(),
		Location:     a.Location(),
		DamageCost:   a.DamageCost(),
		TruckID:      a.TruckID(),
		CustomerID:   a.CustomerID(),
	}
}

// RentalBody reads returned and cancellationReason out only. Status changes through the return
// and cancel endpoints, so an update naming a different status is rejected.
type RentalBody struct {
	ID                 int     `json:"id,omitempty"`
	RentDate           string  `json:"rentDate,omitempty"`
	ReturnDate         string  `json:"returnDate,omitempty"`
	TotalCost          float64 `json:"totalCost"`
	PaymentMade        *bool   `json:"paymentMade"`
	Returned           bool    `json:"returned"`
	CustomerID         int     `json:"customerId"`
	TruckID            int     `json:"truckId"`
	PickUpBranchID     int     `json:"pickUpBranchId"`
	DropOffBranchID    int     `json:"dropOffBranchId"`
	Status             string  `json:"status,omitempty"`
	CancellationReason string  `json:"cancellationReason,omitempty"`
}

func (b RentalBody) dates() (time.Time, time.Time, error) {
	rentDate, err := parseDate("rentDate", b.RentDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	returnDate, err := parseDate("returnDate", b.ReturnDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return rentDate, returnDate, nil
}

func (b RentalBody) draft() (renttruck.RentTruck, error) {
	rentDate, returnDate, err := b.dates()
	if err != nil {
		return renttruck.RentTruck{}, err
	}
	return renttruck.NewBuilder().
		SetRentDate(rentDate).
		SetReturnDate(returnDate).
		SetTotalCost(b.TotalCost).
		SetPaymentMade(b.PaymentMade != nil && *b.PaymentMade).
		SetCustomerID(b.CustomerID).
		SetTruckID(b.TruckID).
		SetPickUpBranchID(b.PickUpBranchID).
		SetDropOffBranchID(b.DropOffBranchID).
		SetStatus(renttruck.Status(b.Status)).
		Build(), nil
}

func (b RentalBody) changes() (renttruck.Changes, error) {
	rentDate, returnDate, err := b.dates()
	if err != nil {
		return renttruck.Changes{}, err
	}
	return renttruck.Changes{
		RentDate:        rentDate,
		ReturnDate:      returnDate,
		TotalCost:       b.TotalCost,
		PaymentMade:     b.PaymentMade,
		CustomerID:      b.CustomerID,
		TruckID:         b.TruckID,
		PickUpBranchID:  b.PickUpBranchID,
		DropOffBranchID: b.DropOffBranchID,
		Status:          renttruck.Status(b.Status),
	}, nil
}

func rentalBody(r renttruck.RentTruck) RentalBody {
	paymentMade := r.PaymentMade()
	return RentalBody{
		ID:                 r.ID(),
		RentDate:           formatDate(r.RentDate()),
		ReturnDate:         formatDate(r.ReturnDate()),
		TotalCost:          r.TotalCost(),
		PaymentMade:        &paymentMade,
		Returned:           r.Returned(),
		CustomerID:         r.CustomerID(),
		TruckID:            r.TruckID(),
		PickUpBranchID:     r.PickUpBranchID(),
		DropOffBranchID:    r.DropOffBranchID(),
		Status:             r.Status().String(),
		CancellationReason: r.CancellationReason(),
	}
}

type RentalReturnBody struct {
	ReturnedOn string `json:"returnedOn,omitempty"`
}

type RentalCancelBody struct {
	Reason string `json:"reason,omitempty"`
}

type ComplaintBody struct {
	ID            int    `json:"id,omitempty"`
	Description   string `json:"description"`
	Status        string `json:"status,omitempty"`
	ComplaintDate string `json:"complaintDate,omitempty"`
	CustomerID    int    `json:"customerId,omitempty"`
	Response      string `json:"response,omitempty"`
}

func (b ComplaintBody) draft() (complaint.Complaint, error) {
	date, err := parseDate("complaintDate", b.ComplaintDate)
	if err != nil {
		return complaint.Complaint{}, err
	}
	return complaint.NewBuilder().
		SetDescription(b.Description).
		SetStatus(complaint.Status(b.Status)).
		SetComplaintDate(date).
		SetCustomerID(b.CustomerID).
		SetResponse(b.Response).
		Build(), nil
}

func complaintBody(c complaint.Complaint) ComplaintBody {
	return ComplaintBody{
		ID:            c.ID(),
		Description:   c.Description(),
		Status:        c.Status().String(),
		ComplaintDate: formatDate(c.ComplaintDate()),
		CustomerID:    c.CustomerID(),
		Response:      c.Response(),
	}
}

// NewComplaintBody files a complaint; the email links it to a customer when one matches.
type NewComplaintBody struct {
	Description string `json:"description"`
	Email       string `json:"email"`
}

type ComplaintResponseBody struct {
	Response string `json:"response"`
}

type OverdueRentalBody struct {
	RentID        int    `json:"rentId"`
	ReturnDate    string `json:"returnDate"`
	DaysOverdue   int    `json:"daysOverdue"`
	CustomerID    int    `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerCell  string `json:"customerCell"`
	TruckID       int    `json:"truckId"`
	LicensePlate  string `json:"licensePlate"`
}

func overdueRentalBody(r queries.GetOverdueRentalsQueryResponse) OverdueRentalBody {
	return OverdueRentalBody{
		RentID:        r.RentID,
		ReturnDate:    formatDate(r.ReturnDate),
		DaysOverdue:   r.DaysOverdue,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerCell:  r.CustomerCell,
		TruckID:       r.TruckID,
		LicensePlate:  r.LicensePlate,
	}
}

type FleetSummaryBody struct {
	TotalTrucks     int `json:"totalTrucks"`
	AvailableTrucks int `json:"availableTrucks"`
	ActiveRentals   int `json:"activeRentals"`
	OverdueRentals  int `json:"overdueRentals"`
}
