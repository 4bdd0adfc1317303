// Package postgres provides the GORM unit of work that hands out transaction-bound
// repositories for every entity.
//
// Typical use from a service:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ComplaintRepository().Save(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories must be obtained after Begin to run inside the transaction. Each UnitOfWork
// instance belongs to one goroutine; create a new one per operation.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"truckrental/internal/adapters/out/postgres/accidentreportrepo"
	"truckrental/internal/adapters/out/postgres/branchrepo"
	"truckrental/internal/adapters/out/postgres/complaintrepo"
	"truckrental/internal/adapters/out/postgres/contactusrepo"
	"truckrental/internal/adapters/out/postgres/customerrepo"
	"truckrental/internal/adapters/out/postgres/insurancerepo"
	"truckrental/internal/adapters/out/postgres/renttruckrepo"
	"truckrental/internal/adapters/out/postgres/truckrepo"
	"truckrental/internal/adapters/out/postgres/trucktyperepo"
	"truckrental/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an entity saved during the unit of work.
type trackedAggregate struct {
	ID        int
	Aggregate any
}

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:     db,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create returns a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion, for callers that need the concrete type.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the entities saved in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, tracked := range uow.trackedAggregates {
		uow.logger.DebugContext(ctx, "Aggregate committed",
			"type", fmt.Sprintf("%T", tracked.Aggregate), "id", tracked.ID)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open, which is the case
// after Commit; deferred rollbacks ignore it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// TrackAggregate is called by the repositories after every successful save.
func (uow *GormUnitOfWork) TrackAggregate(id int, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many saves the open transaction holds.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

// conn is the open transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) BranchRepository() ports.BranchRepository {
	return branchrepo.NewGormBranchRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) InsuranceRepository() ports.InsuranceRepository {
	return insurancerepo.NewGormInsuranceRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ContactUsRepository() ports.ContactUsRepository {
	return contactusrepo.NewGormContactUsRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AccidentReportRepository() ports.AccidentReportRepository {
	return accidentreportrepo.NewGormAccidentReportRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ComplaintRepository() ports.ComplaintRepository {
	return complaintrepo.NewGormComplaintRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RentTruckRepository() ports.RentTruckRepository {
	return renttruckrepo.NewGormRentTruckRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TruckTypeRepository() ports.TruckTypeRepository {
	return trucktyperepo.NewGormTruckTypeRepository(uow.conn(), uow)
}
