package ports

import (
	"context"
	"time"

	"truckrental/internal/core/domain/model/accidentreport"
	"truckrental/internal/core/domain/model/branch"
	"truckrental/internal/core/domain/model/complaint"
	"truckrental/internal/core/domain/model/contactus"
	"truckrental/internal/core/domain/model/customer"
	"truckrental/internal/core/domain/model/insurance"
	"truckrental/internal/core/domain/model/renttruck"
	"truckrental/internal/core/domain/model/truck"
	"truckrental/internal/core/domain/model/trucktype"
)

type CustomerRepository interface {
	Repository[customer.Customer]

	// FindByEmail matches the normalized email. Unknown emails return ErrObjectNotFound.
	FindByEmail(ctx context.Context, email string) (customer.Customer, error)
}

type TruckRepository interface {
	Repository[truck.Truck]
}

type TruckTypeRepository interface {
	Repository[trucktype.TruckType]
}

type BranchRepository interface {
	Repository[branch.Branch]
}

type InsuranceRepository interface {
	Repository[insurance.Insurance]
}

type ContactUsRepository interface {
	Repository[contactus.ContactUs]
}

type AccidentReportRepository interface {
	Repository[accidentreport.AccidentReport]

	FindByCustomer(ctx context.Context, customerID int) ([]accidentreport.AccidentReport, error)
}

type ComplaintRepository interface {
	Repository[complaint.Complaint]

	FindByCustomer(ctx context.Context, customerID int) ([]complaint.Complaint, error)
}

type RentTruckRepository interface {
	Repository[renttruck.RentTruck]

	FindByCustomer(ctx context.Context, customerID int) ([]renttruck.RentTruck, error)

	// FindActiveByTruck returns the ACTIVE rentals holding the truck.
	FindActiveByTruck(ctx context.Context, truckID int) ([]renttruck.RentTruck, error)

	// FindOverdue returns ACTIVE, unreturned rentals whose return date is before asOf's day.
	FindOverdue(ctx context.Context, asOf time.Time) ([]renttruck.RentTruck, error)
}
