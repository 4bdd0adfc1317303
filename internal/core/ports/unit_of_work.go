package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per service call.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it run inside
// the transaction opened by Begin; without Begin they run directly against the database.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active, including after Commit.
	// Deferred calls discard that error.
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	TruckRepository() TruckRepository
	BranchRepository() BranchRepository
	InsuranceRepository() InsuranceRepository
	ContactUsRepository() ContactUsRepository
	AccidentReportRepository() AccidentReportRepository
	ComplaintRepository() ComplaintRepository
	RentTruckRepository() RentTruckRepository
	TruckTypeRepository() TruckTypeRepository
}
