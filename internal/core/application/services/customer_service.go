package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"truckrental/internal/core/domain/model/customer"
	"truckrental/internal/pkg/errs"
)

type CustomerService struct {
	uowFactory CustomerUoWFactory
	logger     *slog.Logger
}

func NewCustomerService(uowFactory CustomerUoWFactory, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		uowFactory: uowFactory,
		logger:     logger.With("component", "customer_service"),
	}
}

// Create registers a customer. Emails are unique across customers.
func (s *CustomerService) Create(ctx context.Context, draft customer.Customer) (customer.Customer, error) {
	uow := s.uowFactory.Create()

	var created customer.Customer
	err := inTx(ctx, uow, func() error {
		customers := uow.CustomerRepository()

		id, err := customers.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = customer.NewCustomer(id, draft.FirstName(), draft.LastName(), draft.Email(), draft.CellNo())
		if err != nil {
			return err
		}

		if err = ensureEmailFree(ctx, customers, created.Email(), 0); err != nil {
			return err
		}

		return customers.Save(ctx, created)
	})
	if err != nil {
		return customer.Customer{}, err
	}

	s.logger.InfoContext(ctx, "Customer registered", "customer_id", created.ID())
	return created, nil
}

func (s *CustomerService) Read(ctx context.Context, id int) (customer.Customer, error) {
	return s.uowFactory.Create().CustomerRepository().Get(ctx, id)
}

func (s *CustomerService) ReadByEmail(ctx context.Context, email string) (customer.Customer, error) {
	return s.uowFactory.Create().CustomerRepository().FindByEmail(ctx, customer.NormalizeEmail(email))
}

func (s *CustomerService) Update(ctx context.Context, id int, changes customer.Customer) (customer.Customer, error) {
	uow := s.uowFactory.Create()

	var updated customer.Customer
	err := inTx(ctx, uow, func() error {
		customers := uow.CustomerRepository()

		existing, err := customers.Get(ctx, id)
		if err != nil {
			return err
		}

		updated = customer.NewBuilder().
			Copy(existing).
			SetFirstName(orCurrent(changes.FirstName(), existing.FirstName())).
			SetLastName(orCurrent(changes.LastName(), existing.LastName())).
			SetEmail(customer.NormalizeEmail(orCurrent(changes.Email(), existing.Email()))).
			SetCellNo(orCurrent(changes.CellNo(), existing.CellNo())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		if updated.Email() != existing.Email() {
			if err = ensureEmailFree(ctx, customers, updated.Email(), existing.ID()); err != nil {
				return err
			}
		}

		return customers.Save(ctx, updated)
	})
	if err != nil {
		return customer.Customer{}, err
	}
	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.CustomerRepository().Delete(ctx, id)
	})
}

func (s *CustomerService) GetAll(ctx context.Context) ([]customer.Customer, error) {
	return s.uowFactory.Create().CustomerRepository().List(ctx)
}

type emailFinder interface {
	FindByEmail(ctx context.Context, email string) (customer.Customer, error)
}

// ensureEmailFree fails when another customer than ownerID already uses email.
func ensureEmailFree(ctx context.Context, customers emailFinder, email string, ownerID int) error {
	other, err := customers.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	case err != nil:
		return err
	case other.ID() == ownerID:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", email))
}
