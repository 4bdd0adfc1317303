package services

import (
	"context"
	"time"

	"truckrental/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	InsuranceRepoFactory interface {
		InsuranceRepository() ports.InsuranceRepository
	}

	ContactUsRepoFactory interface {
		ContactUsRepository() ports.ContactUsRepository
	}

	AccidentReportRepoFactory interface {
		AccidentReportRepository() ports.AccidentReportRepository
	}

	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	RentTruckRepoFactory interface {
		RentTruckRepository() ports.RentTruckRepository
	}

	TruckTypeRepoFactory interface {
		TruckTypeRepository() ports.TruckTypeRepository
	}
)

type (
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// TruckUoW also reads rentals so a truck still out on rent is not marked available.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
		RentTruckRepoFactory
	}

	BranchUoW interface {
		TxManager
		BranchRepoFactory
	}

	ContactUsUoW interface {
		TxManager
		ContactUsRepoFactory
	}

	TruckTypeUoW interface {
		TxManager
		TruckTypeRepoFactory
	}

	// InsuranceUoW also reads trucks to check the insured truck exists.
	InsuranceUoW interface {
		TxManager
		InsuranceRepoFactory
		TruckRepoFactory
	}

	AccidentReportUoW interface {
		TxManager
		AccidentReportRepoFactory
		CustomerRepoFactory
		TruckRepoFactory
	}

	ComplaintUoW interface {
		TxManager
		ComplaintRepoFactory
		CustomerRepoFactory
	}

	// RentTruckUoW spans rentals and everything a rental references. Trucks are also written:
	// renting one marks it unavailable and returning or cancelling frees it again.
	RentTruckUoW interface {
		TxManager
		RentTruckRepoFactory
		CustomerRepoFactory
		TruckRepoFactory
		BranchRepoFactory
	}
)

type (
	CustomerUoWFactory       interface{ Create() CustomerUoW }
	TruckUoWFactory          interface{ Create() TruckUoW }
	BranchUoWFactory         interface{ Create() BranchUoW }
	ContactUsUoWFactory      interface{ Create() ContactUsUoW }
	InsuranceUoWFactory      interface{ Create() InsuranceUoW }
	AccidentReportUoWFactory interface{ Create() AccidentReportUoW }
	ComplaintUoWFactory      interface{ Create() ComplaintUoW }
	RentTruckUoWFactory      interface{ Create() RentTruckUoW }
	TruckTypeUoWFactory      interface{ Create() TruckTypeUoW }
)

// Clock returns the current time. Services that stamp dates take one so tests can pin "today".
type Clock func() time.Time

// inTx runs fn inside a transaction on uow, committing when fn succeeds.
func inTx(ctx context.Context, uow TxManager, fn func() error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
