package services

import (
	"context"
	"errors"
	"log/slog"

	"truckrental/internal/core/domain/model/complaint"
	"truckrental/internal/core/domain/model/customer"
	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/pkg/errs"
)

// ComplaintService runs the complaint workflow: file, edit, respond.
//
//	Pending, "None" ──Update──> (copy + override) ──RespondToComplaint──> Resolved, response
type ComplaintService struct {
	uowFactory ComplaintUoWFactory
	clock      Clock
	logger     *slog.Logger
}

func NewComplaintService(uowFactory ComplaintUoWFactory, clock Clock, logger *slog.Logger) *ComplaintService {
	return &ComplaintService{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "complaint_service"),
	}
}

// Create files a complaint dated today. An email that matches no customer files the complaint
// without one rather than failing.
func (s *ComplaintService) Create(ctx context.Context, description, email string) (complaint.Complaint, error) {
	if kernel.IsBlank(description) {
		return complaint.Complaint{}, errs.NewValueIsRequiredError("description")
	}

	uow := s.uowFactory.Create()

	var created complaint.Complaint
	err := inTx(ctx, uow, func() error {
		complaints := uow.ComplaintRepository()
		customers := uow.CustomerRepository()

		customerID := 0
		if !kernel.IsBlank(email) {
			c, err := customers.FindByEmail(ctx, customer.NormalizeEmail(email))
			switch {
			case err == nil:
				customerID = c.ID()
			case !errors.Is(err, errs.ErrObjectNotFound):
				return err
			}
		}

		id, err := complaints.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = complaint.NewComplaint(id, description, s.clock(), customerID)
		if err != nil {
			return err
		}

		return complaints.Save(ctx, created)
	})
	if err != nil {
		return complaint.Complaint{}, err
	}

	s.logger.InfoContext(ctx, "Complaint filed", "complaint_id", created.ID(), "customer_id", created.CustomerID())
	return created, nil
}

func (s *ComplaintService) Read(ctx context.Context, id int) (complaint.Complaint, error) {
	return s.uowFactory.Create().ComplaintRepository().Get(ctx, id)
}

// Update overrides the stored complaint with the supplied fields. Zero-valued fields keep
// their stored value. A resolved complaint cannot be moved to another status.
func (s *ComplaintService) Update(ctx context.Context, id int, changes complaint.Complaint) (complaint.Complaint, error) {
	uow := s.uowFactory.Create()

	var updated complaint.Complaint
	err := inTx(ctx, uow, func() error {
		complaints := uow.ComplaintRepository()

		existing, err := complaints.Get(ctx, id)
		if err != nil {
			return err
		}

		status, err := existing.Status().TransitionTo(orCurrent(changes.Status(), existing.Status()))
		if err != nil {
			return err
		}

		updated = complaint.NewBuilder().
			Copy(existing).
			SetDescription(orCurrent(changes.Description(), existing.Description())).
			SetStatus(status).
			SetComplaintDate(orCurrent(changes.ComplaintDate(), existing.ComplaintDate())).
			SetCustomerID(orCurrent(changes.CustomerID(), existing.CustomerID())).
			SetResponse(orCurrent(changes.Response(), existing.Response())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		if updated.CustomerID() != existing.CustomerID() {
			if _, err = uow.CustomerRepository().Get(ctx, updated.CustomerID()); err != nil {
				return err
			}
		}

		return complaints.Save(ctx, updated)
	})
	if err != nil {
		return complaint.Complaint{}, err
	}

	s.logger.InfoContext(ctx, "Complaint updated", "complaint_id", updated.ID(), "status", updated.Status())
	return updated, nil
}

func (s *ComplaintService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.ComplaintRepository().Delete(ctx, id)
	})
}

func (s *ComplaintService) GetAll(ctx context.Context) ([]complaint.Complaint, error) {
	return s.uowFactory.Create().ComplaintRepository().List(ctx)
}

// GetComplaintsByCustomerID fails with ErrObjectNotFound when the customer does not exist.
func (s *ComplaintService) GetComplaintsByCustomerID(ctx context.Context, customerID int) ([]complaint.Complaint, error) {
	uow := s.uowFactory.Create()

	var found []complaint.Complaint
	err := inTx(ctx, uow, func() error {
		if _, err := uow.CustomerRepository().Get(ctx, customerID); err != nil {
			return err
		}

		var err error
		found, err = uow.ComplaintRepository().FindByCustomer(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// GetComplaintsByCustomerEmail looks the customer up and lists their complaints in one transaction.
func (s *ComplaintService) GetComplaintsByCustomerEmail(ctx context.Context, email string) ([]complaint.Complaint, error) {
	uow := s.uowFactory.Create()

	var found []complaint.Complaint
	err := inTx(ctx, uow, func() error {
		c, err := uow.CustomerRepository().FindByEmail(ctx, customer.NormalizeEmail(email))
		if err != nil {
			return err
		}

		found, err = uow.ComplaintRepository().FindByCustomer(ctx, c.ID())
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// RespondToComplaint stores the response and resolves the complaint.
func (s *ComplaintService) RespondToComplaint(ctx context.Context, id int, response string) (complaint.Complaint, error) {
	uow := s.uowFactory.Create()

	var resolved complaint.Complaint
	err := inTx(ctx, uow, func() error {
		complaints := uow.ComplaintRepository()

		existing, err := complaints.Get(ctx, id)
		if err != nil {
			return err
		}

		resolved, err = existing.Respond(response)
		if err != nil {
			return err
		}

		return complaints.Save(ctx, resolved)
	})
	if err != nil {
		return complaint.Complaint{}, err
	}

	s.logger.InfoContext(ctx, "Complaint resolved", "complaint_id", resolved.ID())
	return resolved, nil
}
