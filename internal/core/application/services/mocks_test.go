package services_test

import (
	"context"
	"log/slog"
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
	"truckrental/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var today = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return today.Add(10 * time.Hour)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func first[E any](args mock.Arguments) E {
	if v, ok := args.Get(0).(E); ok {
		return v
	}
	var zero E
	return zero
}

type MockRepository[E any] struct{ mock.Mock }

func (m *MockRepository[E]) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository[E]) Get(ctx context.Context, id int) (E, error) {
	args := m.Called(ctx, id)
	return first[E](args), args.Error(1)
}

func (m *MockRepository[E]) List(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	return first[[]E](args), args.Error(1)
}

func (m *MockRepository[E]) Save(ctx context.Context, entity E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[E]) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	MockRepository[customer.Customer]
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (customer.Customer, error) {
	args := m.Called(ctx, email)
	return first[customer.Customer](args), args.Error(1)
}

type MockTruckRepository struct {
	MockRepository[truck.Truck]
}

type MockTruckTypeRepository struct {
	MockRepository[trucktype.TruckType]
}

type MockBranchRepository struct {
	MockRepository[branch.Branch]
}

type MockInsuranceRepository struct {
	MockRepository[insurance.Insurance]
}

type MockContactUsRepository struct {
	MockRepository[contactus.ContactUs]
}

type MockAccidentReportRepository struct {
	MockRepository[accidentreport.AccidentReport]
}

func (m *MockAccidentReportRepository) FindByCustomer(
	ctx context.Context,
	customerID int,
) ([]accidentreport.AccidentReport, error) {
	args := m.Called(ctx, customerID)
	return first[[]accidentreport.AccidentReport](args), args.Error(1)
}

type MockComplaintRepository struct {
	MockRepository[complaint.Complaint]
}

func (m *MockComplaintRepository) FindByCustomer(ctx context.Context, customerID int) ([]complaint.Complaint, error) {
	args := m.Called(ctx, customerID)
	return first[[]complaint.Complaint](args), args.Error(1)
}

type MockRentTruckRepository struct {
	MockRepository[renttruck.RentTruck]
}

func (m *MockRentTruckRepository) FindByCustomer(ctx context.Context, customerID int) ([]renttruck.RentTruck, error) {
	args := m.Called(ctx, customerID)
	return first[[]renttruck.RentTruck](args), args.Error(1)
}

func (m *MockRentTruckRepository) FindActiveByTruck(ctx context.Context, truckID int) ([]renttruck.RentTruck, error) {
	args := m.Called(ctx, truckID)
	return first[[]renttruck.RentTruck](args), args.Error(1)
}

func (m *MockRentTruckRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]renttruck.RentTruck, error) {
	args := m.Called(ctx, asOf)
	return first[[]renttruck.RentTruck](args), args.Error(1)
}

// MockUoW mocks the transaction calls and hands out whichever repositories a test sets.
type MockUoW struct {
	mock.Mock

	Customers       *MockCustomerRepository
	Trucks          *MockTruckRepository
	Branches        *MockBranchRepository
	Insurances      *MockInsuranceRepository
	Contacts        *MockContactUsRepository
	AccidentReports *MockAccidentReportRepository
	Complaints      *MockComplaintRepository
	Rentals         *MockRentTruckRepository
	TruckTypes      *MockTruckTypeRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		Customers:       new(MockCustomerRepository),
		Trucks:          new(MockTruckRepository),
		Branches:        new(MockBranchRepository),
		Insurances:      new(MockInsuranceRepository),
		Contacts:        new(MockContactUsRepository),
		AccidentReports: new(MockAccidentReportRepository),
		Complaints:      new(MockComplaintRepository),
		Rentals:         new(MockRentTruckRepository),
		TruckTypes:      new(MockTruckTypeRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Customers
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	return m.Trucks
}

func (m *MockUoW) BranchRepository() ports.BranchRepository {
	return m.Branches
}

func (m *MockUoW) InsuranceRepository() ports.InsuranceRepository {
	return m.Insurances
}

func (m *MockUoW) ContactUsRepository() ports.ContactUsRepository {
	return m.Contacts
}

func (m *MockUoW) AccidentReportRepository() ports.AccidentReportRepository {
	return m.AccidentReports
}

func (m *MockUoW) ComplaintRepository() ports.ComplaintRepository {
	return m.Complaints
}

func (m *MockUoW) RentTruckRepository() ports.RentTruckRepository {
	return m.Rentals
}

func (m *MockUoW) TruckTypeRepository() ports.TruckTypeRepository {
	return m.TruckTypes
}

// expectCommittedTx sets up Begin, Commit and the deferred Rollback.
func (m *MockUoW) expectCommittedTx(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Maybe()
}

// expectRolledBackTx sets up a transaction that never reaches Commit.
func (m *MockUoW) expectRolledBackTx(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

type stubFactory[U any] struct{ uow U }

func (f stubFactory[U]) Create() U {
	return f.uow
}
