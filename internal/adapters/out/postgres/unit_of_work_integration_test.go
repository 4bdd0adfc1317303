package postgres_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "truckrental/internal/adapters/out/postgres"
	"truckrental/internal/adapters/out/postgres/migrations"
	"truckrental/internal/core/domain/model/branch"
	"truckrental/internal/core/domain/model/complaint"
	"truckrental/internal/core/domain/model/customer"
	"truckrental/internal/core/domain/model/renttruck"
	"truckrental/internal/core/domain/model/truck"
	"truckrental/internal/core/domain/model/trucktype"
	"truckrental/internal/core/ports"
	"truckrental/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work and repositories against a real
// PostgreSQL database whose schema comes from the embedded migrations.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	dsn       string
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.dsn = dsn

	err = migrations.NewMigrator(dsn, slog.New(slog.DiscardHandler)).Up()
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, slog.New(slog.DiscardHandler))
}

// SetupTest truncates every table so tests do not see each other's rows.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE rent_trucks, complaints, accident_reports, insurances, " +
		"contact_us, branches, trucks, truck_types, customers RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrator_IsIdempotent() {
	migrator := migrations.NewMigrator(suite.dsn, slog.New(slog.DiscardHandler))

	suite.Require().NoError(migrator.Up())

	version, dirty, err := migrator.Version()
	suite.Require().NoError(err)
	suite.Equal(uint(2), version)
	suite.False(dirty)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow2.RentTruckRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SaveAndGetInsideTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	c := suite.newCustomer(ctx, uow, "ada@example.com")

	retrieved, err := uow.CustomerRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(c.Equal(retrieved))

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err = suite.factory.Create().CustomerRepository().FindByEmail(ctx, "ada@example.com")
	suite.Require().NoError(err)
	suite.Equal(c.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TrackedAggregatesClearedOnCommit() {
	ctx := context.Background()
	uow := suite.factory.CreateGorm()

	suite.Require().NoError(uow.Begin(ctx))
	suite.newCustomer(ctx, uow, "grace@example.com")
	suite.newTruck(ctx, uow)
	suite.Equal(2, uow.TrackedCount())

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(0, uow.TrackedCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEveryRepository() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	c := suite.newCustomer(ctx, uow, "linus@example.com")
	t := suite.newTruck(ctx, uow)
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.CustomerRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.TruckRepository().Get(ctx, t.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	b1 := suite.newBranch(ctx, uow1, "Central")
	b2 := suite.newBranch(ctx, uow2, "Harbour")

	_, err := uow1.BranchRepository().Get(ctx, b2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "uow1 should not see uow2's branch")
	_, err = uow2.BranchRepository().Get(ctx, b1.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "uow2 should not see uow1's branch")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	branches, err := suite.factory.Create().BranchRepository().List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(branches, 1)
	suite.Equal("Central", branches[0].Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	t := suite.newTruck(ctx, uow)

	retrieved, err := suite.factory.Create().TruckRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.True(t.Equal(retrieved))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSave_UpdatesExistingRow() {
	ctx := context.Background()
	uow := suite.factory.Create()
	t := suite.newTruck(ctx, uow)

	rented := truck.NewBuilder().Copy(t).SetAvailable(false).SetDailyRate(120).Build()
	suite.Require().NoError(uow.TruckRepository().Save(ctx, rented))

	retrieved, err := uow.TruckRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.Available())
	suite.InDelta(120.0, retrieved.DailyRate(), 0.001)

	all, err := uow.TruckRepository().List(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDelete_UnknownIDIsNoOp() {
	ctx := context.Background()
	suite.Require().NoError(suite.factory.Create().BranchRepository().Delete(ctx, 4242))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCustomerEmail_IsUnique() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.newCustomer(ctx, uow, "dup@example.com")

	id, err := uow.CustomerRepository().NextID(ctx)
	suite.Require().NoError(err)
	twin, err := customer.NewCustomer(id, "Other", "Person", "dup@example.com", "0821234567")
	suite.Require().NoError(err)

	suite.Require().Error(uow.CustomerRepository().Save(ctx, twin))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestComplaint_WithAndWithoutCustomer() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := suite.newCustomer(ctx, uow, "kim@example.com")
	repo := uow.ComplaintRepository()

	for _, customerID := range []int{c.ID(), 0} {
		id, err := repo.NextID(ctx)
		suite.Require().NoError(err)
		cmp, err := complaint.NewComplaint(id, "Dirty cabin", time.Now(), customerID)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Save(ctx, cmp))
	}

	all, err := repo.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(all[0].HasCustomer())
	suite.False(all[1].HasCustomer())
	suite.Equal(complaint.NoResponse, all[1].Response())

	byCustomer, err := repo.FindByCustomer(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Len(byCustomer, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRentTruck_FindOverdue() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := suite.newCustomer(ctx, uow, "sam@example.com")
	t := suite.newTruck(ctx, uow)
	b := suite.newBranch(ctx, uow, "Airport")
	repo := uow.RentTruckRepository()
	asOf := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	save := func(returnDate time.Time) renttruck.RentTruck {
		id, err := repo.NextID(ctx)
		suite.Require().NoError(err)
		r, err := renttruck.NewRentTruck(id, returnDate.AddDate(0, 0, -3), returnDate, 300, true, false,
			c.ID(), t.ID(), b.ID(), b.ID(), renttruck.Active)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Save(ctx, r))
		return r
	}

	late := save(asOf.AddDate(0, 0, -2))
	save(asOf)
	cancelled, err := save(asOf.AddDate(0, 0, -5)).Cancel("Customer no-show")
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, cancelled))

	stored, err := repo.Get(ctx, cancelled.ID())
	suite.Require().NoError(err)
	suite.Equal("Customer no-show", stored.CancellationReason())

	overdue, err := repo.FindOverdue(ctx, asOf)
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.True(late.Equal(overdue[0]))

	byCustomer, err := repo.FindByCustomer(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Len(byCustomer, 3)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRentTruck_ForeignKeysEnforced() {
	ctx := context.Background()
	repo := suite.factory.Create().RentTruckRepository()

	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	r, err := renttruck.NewRentTruck(id, time.Time{}, time.Now().AddDate(0, 0, 2), 0, false, false,
		77, 78, 79, 80, renttruck.Active)
	suite.Require().NoError(err)

	suite.Require().Error(repo.Save(ctx, r))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRentTruck_DateOrderEnforced() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := suite.newCustomer(ctx, uow, "ida@example.com")
	t := suite.newTruck(ctx, uow)
	b := suite.newBranch(ctx, uow, "Docks")
	repo := uow.RentTruckRepository()

	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	r, err := renttruck.NewRentTruck(id, time.Now(), time.Now().AddDate(0, 0, 2), 0, false, false,
		c.ID(), t.ID(), b.ID(), b.ID(), renttruck.Active)
	suite.Require().NoError(err)
	reversed := renttruck.NewBuilder().Copy(r).SetReturnDate(time.Now().AddDate(0, 0, -2)).Build()

	suite.Require().Error(repo.Save(ctx, reversed))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDelete_RentedTruckIsReferenced() {
	ctx := context.Background()
	uow := suite.factory.Create()
	c := suite.newCustomer(ctx, uow, "noor@example.com")
	t := suite.newTruck(ctx, uow)
	b := suite.newBranch(ctx, uow, "Station")
	repo := uow.RentTruckRepository()

	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	r, err := renttruck.NewRentTruck(id, time.Now(), time.Now().AddDate(0, 0, 2), 0, false, false,
		c.ID(), t.ID(), b.ID(), b.ID(), renttruck.Active)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, r))

	err = uow.TruckRepository().Delete(ctx, t.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectIsReferenced)

	_, err = uow.TruckRepository().Get(ctx, t.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTruckType_RoundTrip() {
	ctx := context.Background()
	repo := suite.factory.Create().TruckTypeRepository()

	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	tt, err := trucktype.NewTruckType(id, "8-ton box", "Tail lift", 8)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, tt))

	retrieved, err := suite.factory.Create().TruckTypeRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.True(tt.Equal(retrieved))

	suite.Require().NoError(repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) newCustomer(ctx context.Context, uow ports.UnitOfWork, email string) customer.Customer {
	repo := uow.CustomerRepository()
	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	c, err := customer.NewCustomer(id, "Test", "Customer", email, "0821234567")
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, c))
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) newTruck(ctx context.Context, uow ports.UnitOfWork) truck.Truck {
	repo := uow.TruckRepository()
	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	t, err := truck.NewTruck(id, "JALFRR90MN7000123", "Isuzu NPR", "CA 123-456", 95.5, true)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, t))
	return t
}

func (suite *UnitOfWorkIntegrationTestSuite) newBranch(ctx context.Context, uow ports.UnitOfWork, name string) branch.Branch {
	repo := uow.BranchRepository()
	id, err := repo.NextID(ctx)
	suite.Require().NoError(err)
	b, err := branch.NewBranch(id, name, "12 Long Street, Cape Town")
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, b))
	return b
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
