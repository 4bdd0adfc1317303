package cmd

import (
	"log/slog"
	"time"

	"truckrental/internal/adapters/in/http"
	"truckrental/internal/adapters/out/postgres"
	"truckrental/internal/core/application/services"
	"truckrental/internal/core/application/usecases/queries"
	"truckrental/internal/core/ports"
	"truckrental/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	clock      services.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		clock:      time.Now,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCustomerService() *services.CustomerService {
	var f services.CustomerUoWFactory = FuncUoWFactory[services.CustomerUoW](func() services.CustomerUoW {
		return c.uowFactory.Create()
	})
	return services.NewCustomerService(f, c.logger)
}

func (c *CompositionRoot) CreateTruckService() *services.TruckService {
	var f services.TruckUoWFactory = FuncUoWFactory[services.TruckUoW](func() services.TruckUoW {
		return c.uowFactory.Create()
	})
	return services.NewTruckService(f, c.logger)
}

func (c *CompositionRoot) CreateTruckTypeService() *services.TruckTypeService {
	var f services.TruckTypeUoWFactory = FuncUoWFactory[services.TruckTypeUoW](func() services.TruckTypeUoW {
		return c.uowFactory.Create()
	})
	return services.NewTruckTypeService(f, c.logger)
}

func (c *CompositionRoot) CreateBranchService() *services.BranchService {
	var f services.BranchUoWFactory = FuncUoWFactory[services.BranchUoW](func() services.BranchUoW {
		return c.uowFactory.Create()
	})
	return services.NewBranchService(f, c.logger)
}

func (c *CompositionRoot) CreateInsuranceService() *services.InsuranceService {
	var f services.InsuranceUoWFactory = FuncUoWFactory[services.InsuranceUoW](func() services.InsuranceUoW {
		return c.uowFactory.Create()
	})
	return services.NewInsuranceService(f, c.logger)
}

func (c *CompositionRoot) CreateContactUsService() *services.ContactUsService {
	var f services.ContactUsUoWFactory = FuncUoWFactory[services.ContactUsUoW](func() services.ContactUsUoW {
		return c.uowFactory.Create()
	})
	return services.NewContactUsService(f, c.logger)
}

func (c *CompositionRoot) CreateAccidentReportService() *services.AccidentReportService {
	var f services.AccidentReportUoWFactory = FuncUoWFactory[services.AccidentReportUoW](func() services.AccidentReportUoW {
		return c.uowFactory.Create()
	})
	return services.NewAccidentReportService(f, c.logger)
}

func (c *CompositionRoot) CreateComplaintService() *services.ComplaintService {
	var f services.ComplaintUoWFactory = FuncUoWFactory[services.ComplaintUoW](func() services.ComplaintUoW {
		return c.uowFactory.Create()
	})
	return services.NewComplaintService(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRentTruckService() *services.RentTruckService {
	var f services.RentTruckUoWFactory = FuncUoWFactory[services.RentTruckUoW](func() services.RentTruckUoW {
		return c.uowFactory.Create()
	})
	return services.NewRentTruckService(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetOverdueRentalsQueryHandler() queries.GetOverdueRentalsQueryHandler {
	return queries.NewGetOverdueRentalsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFleetSummaryQueryHandler() queries.GetFleetSummaryQueryHandler {
	return queries.NewGetFleetSummaryQueryHandler(c.gormDB, c.clock)
}

// CreateEcho wires every service behind the HTTP adapter.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	server := http.NewServer(http.Services{
		Customers:       c.CreateCustomerService(),
		Trucks:          c.CreateTruckService(),
		TruckTypes:      c.CreateTruckTypeService(),
		Branches:        c.CreateBranchService(),
		Insurance:       c.CreateInsuranceService(),
		ContactUs:       c.CreateContactUsService(),
		AccidentReports: c.CreateAccidentReportService(),
		Rentals:         c.CreateRentTruckService(),
		Complaints:      c.CreateComplaintService(),
		OverdueRentals:  c.CreateGetOverdueRentalsQueryHandler(),
		FleetSummary:    c.CreateGetFleetSummaryQueryHandler(),
	}, c.clock)
	return http.NewEcho(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRentTruckService(),
		c.CreateGetFleetSummaryQueryHandler(),
		c.clock,
		jobs.Schedules{
			OverdueRentals: c.config.OverdueJobSchedule,
			FleetSummary:   c.config.FleetSummaryJobSchedule,
		},
		c.logger,
	)
}

// FuncUoWFactory adapts a constructor function to the narrow UoW factory each service expects.
type FuncUoWFactory[U any] func() U

func (f FuncUoWFactory[U]) Create() U {
	return f()
}
