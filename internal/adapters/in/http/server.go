package http

import (
	"context"
	"net/http"
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

	"github.com/labstack/echo/v4"
)

// CRUDService is the surface every entity service shares. C is the partial update Update
// takes; most entities use a draft E for it.
type CRUDService[E any, C any] interface {
	Create(ctx context.Context, draft E) (E, error)
	Read(ctx context.Context, id int) (E, error)
	Update(ctx context.Context, id int, changes C) (E, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]E, error)
}

type CustomerService interface {
	CRUDService[customer.Customer, customer.Customer]
	ReadByEmail(ctx context.Context, email string) (customer.Customer, error)
}

type AccidentReportService interface {
	CRUDService[accidentreport.AccidentReport, accidentreport.AccidentReport]
	GetReportsByCustomerID(ctx context.Context, customerID int) ([]accidentreport.AccidentReport, error)
}

type RentTruckService interface {
	CRUDService[renttruck.RentTruck, renttruck.Changes]
	GetRentalsByCustomerID(ctx context.Context, customerID int) ([]renttruck.RentTruck, error)
	ReturnTruck(ctx context.Context, id int, returnedOn time.Time) (renttruck.RentTruck, error)
	CancelRental(ctx context.Context, id int, reason string) (renttruck.RentTruck, error)
}

// ComplaintService files complaints by description and customer email rather than by draft.
type ComplaintService interface {
	Create(ctx context.Context, description, email string) (complaint.Complaint, error)
	Read(ctx context.Context, id int) (complaint.Complaint, error)
	Update(ctx context.Context, id int, changes complaint.Complaint) (complaint.Complaint, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]complaint.Complaint, error)
	GetComplaintsByCustomerID(ctx context.Context, customerID int) ([]complaint.Complaint, error)
	GetComplaintsByCustomerEmail(ctx context.Context, email string) ([]complaint.Complaint, error)
	RespondToComplaint(ctx context.Context, id int, response string) (complaint.Complaint, error)
}

type OverdueRentalsQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOverdueRentalsQuery) ([]queries.GetOverdueRentalsQueryResponse, error)
}

type FleetSummaryQueryHandler interface {
	Handle(ctx context.Context, query queries.GetFleetSummaryQuery) (queries.GetFleetSummaryQueryResponse, error)
}

// Services bundles what the server delegates to.
type Services struct {
	Customers       CustomerService
	Trucks          CRUDService[truck.Truck, truck.Changes]
	TruckTypes      CRUDService[trucktype.TruckType, trucktype.TruckType]
	Branches        CRUDService[branch.Branch, branch.Branch]
	Insurance       CRUDService[insurance.Insurance, insurance.Insurance]
	ContactUs       CRUDService[contactus.ContactUs, contactus.ContactUs]
	AccidentReports AccidentReportService
	Rentals         RentTruckService
	Complaints      ComplaintService
	OverdueRentals  OverdueRentalsQueryHandler
	FleetSummary    FleetSummaryQueryHandler
}

// Server turns HTTP requests into service calls. Handlers return domain errors unchanged;
// ErrorHandler maps them to status codes.
type Server struct {
	services Services
	clock    func() time.Time
}

func NewServer(services Services, clock func() time.Time) *Server {
	return &Server{
		services: services,
		clock:    clock,
	}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	registerCRUD[customer.Customer, customer.Customer, CustomerBody](api.Group("/customers"),
		s.services.Customers, CustomerBody.draft, CustomerBody.draft, customerBody)
	registerCRUD[truck.Truck, truck.Changes, TruckBody](api.Group("/trucks"),
		s.services.Trucks, TruckBody.draft, TruckBody.changes, truckBody)
	registerCRUD[trucktype.TruckType, trucktype.TruckType, TruckTypeBody](api.Group("/truck-types"),
		s.services.TruckTypes, TruckTypeBody.draft, TruckTypeBody.draft, truckTypeBody)
	registerCRUD[branch.Branch, branch.Branch, BranchBody](api.Group("/branches"),
		s.services.Branches, BranchBody.draft, BranchBody.draft, branchBody)
	registerCRUD[insurance.Insurance, insurance.Insurance, InsuranceBody](api.Group("/insurance"),
		s.services.Insurance, InsuranceBody.draft, InsuranceBody.draft, insuranceBody)
	registerCRUD[contactus.ContactUs, contactus.ContactUs, ContactUsBody](api.Group("/contact-us"),
		s.services.ContactUs, ContactUsBody.draft, ContactUsBody.draft, contactUsBody)
	registerCRUD[accidentreport.AccidentReport, accidentreport.AccidentReport, AccidentReportBody](api.Group("/accident-reports"),
		s.services.AccidentReports, AccidentReportBody.draft, AccidentReportBody.draft, accidentReportBody)
	registerCRUD[renttruck.RentTruck, renttruck.Changes, RentalBody](api.Group("/rentals"),
		s.services.Rentals, RentalBody.draft, RentalBody.changes, rentalBody)

	api.GET("/customers/email/:email", s.ReadCustomerByEmail)
	api.GET("/accident-reports/customer/:id", s.GetAccidentReportsByCustomerID)

	api.GET("/rentals/customer/:id", s.GetRentalsByCustomerID)
	api.POST("/rentals/return/:id", s.ReturnTruck)
	api.POST("/rentals/cancel/:id", s.CancelRental)
	api.GET("/rentals/overdue", s.GetOverdueRentals)
	api.GET("/fleet/summary", s.GetFleetSummary)

	complaints := api.Group("/complaints")
	complaints.POST("/create", s.CreateComplaint)
	complaints.GET("/read/:id", s.ReadComplaint)
	complaints.PUT("/update/:id", s.UpdateComplaint)
	complaints.DELETE("/delete/:id", s.DeleteComplaint)
	complaints.GET("/getAll", s.GetAllComplaints)
	complaints.POST("/respond/:id", s.RespondToComplaint)
	complaints.GET("/customer/:id", s.GetComplaintsByCustomerID)
	complaints.GET("/email/:email", s.GetComplaintsByCustomerEmail)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
