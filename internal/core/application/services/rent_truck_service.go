package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/core/domain/model/renttruck"
	"truckrental/internal/core/domain/model/truck"
	"truckrental/internal/pkg/errs"
)

// RentTruckService books, returns and cancels rentals. Booking takes the truck out of the
// available fleet; returning or cancelling puts it back.
type RentTruckService struct {
	uowFactory RentTruckUoWFactory
	clock      Clock
	logger     *slog.Logger
}

func NewRentTruckService(uowFactory RentTruckUoWFactory, clock Clock, logger *slog.Logger) *RentTruckService {
	return &RentTruckService{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "rent_truck_service"),
	}
}

// Create books a rental from draft. The rental always starts ACTIVE. A missing rent date
// defaults to today and a zero total cost is priced from the truck's daily rate.
func (s *RentTruckService) Create(ctx context.Context, draft renttruck.RentTruck) (renttruck.RentTruck, error) {
	uow := s.uowFactory.Create()

	var created renttruck.RentTruck
	err := inTx(ctx, uow, func() error {
		rentals := uow.RentTruckRepository()
		trucks := uow.TruckRepository()

		id, err := rentals.NextID(ctx)
		if err != nil {
			return err
		}

		rentDate := orCurrent(draft.RentDate(), s.clock())
		created, err = renttruck.NewRentTruck(
			id,
			rentDate, draft.ReturnDate(),
			draft.TotalCost(),
			draft.PaymentMade(), false,
			draft.CustomerID(), draft.TruckID(), draft.PickUpBranchID(), draft.DropOffBranchID(),
			draft.Status(),
		)
		if err != nil {
			return err
		}

		if err = s.checkReferences(ctx, uow, created); err != nil {
			return err
		}

		rented, err := trucks.Get(ctx, created.TruckID())
		if err != nil {
			return err
		}
		if !rented.Available() {
			return errs.NewValueIsInvalidErrorWithCause("truckId",
				fmt.Errorf("truck %d is not available", rented.ID()))
		}

		if created.TotalCost() == 0 && rented.HasRate() {
			created = renttruck.NewBuilder().
				Copy(created).
				SetTotalCost(rented.CostFor(created.RentDate(), created.ReturnDate())).
				Build()
		}

		if err = rentals.Save(ctx, created); err != nil {
			return err
		}
		return trucks.Save(ctx, truck.NewBuilder().Copy(rented).SetAvailable(false).Build())
	})
	if err != nil {
		return renttruck.RentTruck{}, err
	}

	s.logger.InfoContext(ctx, "Truck rented",
		"rent_id", created.ID(), "truck_id", created.TruckID(), "customer_id", created.CustomerID())
	return created, nil
}

func (s *RentTruckService) Read(ctx context.Context, id int) (renttruck.RentTruck, error) {
	return s.uowFactory.Create().RentTruckRepository().Get(ctx, id)
}

// Update overrides the stored rental with the supplied fields. Status only changes through
// ReturnTruck and CancelRental, and a COMPLETED or CANCELLED rental only takes payment
// updates. Moving an ACTIVE rental to another truck requires that truck to be available and
// frees the old one. The total cost is not repriced.
func (s *RentTruckService) Update(ctx context.Context, id int, changes renttruck.Changes) (renttruck.RentTruck, error) {
	uow := s.uowFactory.Create()

	var updated renttruck.RentTruck
	err := inTx(ctx, uow, func() error {
		rentals := uow.RentTruckRepository()

		existing, err := rentals.Get(ctx, id)
		if err != nil {
			return err
		}

		if changes.Status != "" && changes.Status != existing.Status() {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("cannot change rental status from %s to %s by update, return or cancel the rental instead",
					existing.Status(), changes.Status))
		}

		updated = renttruck.NewBuilder().
			Copy(existing).
			SetRentDate(orCurrent(changes.RentDate, existing.RentDate())).
			SetReturnDate(orCurrent(changes.ReturnDate, existing.ReturnDate())).
			SetTotalCost(orCurrent(changes.TotalCost, existing.TotalCost())).
			SetPaymentMade(orCurrentFlag(changes.PaymentMade, existing.PaymentMade())).
			SetCustomerID(orCurrent(changes.CustomerID, existing.CustomerID())).
			SetTruckID(orCurrent(changes.TruckID, existing.TruckID())).
			SetPickUpBranchID(orCurrent(changes.PickUpBranchID, existing.PickUpBranchID())).
			SetDropOffBranchID(orCurrent(changes.DropOffBranchID, existing.DropOffBranchID())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		if existing.Status().IsFinal() && !sameBooking(existing, updated) {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("rental %d is %s, only the payment can still change", id, existing.Status()))
		}

		if updated.CustomerID() != existing.CustomerID() ||
			updated.PickUpBranchID() != existing.PickUpBranchID() ||
			updated.DropOffBranchID() != existing.DropOffBranchID() {
			if err = s.checkReferences(ctx, uow, updated); err != nil {
				return err
			}
		}

		if updated.TruckID() != existing.TruckID() {
			if err = s.moveTruck(ctx, uow, existing.TruckID(), updated.TruckID()); err != nil {
				return err
			}
		}

		return rentals.Save(ctx, updated)
	})
	if err != nil {
		return renttruck.RentTruck{}, err
	}

	s.logger.InfoContext(ctx, "Rental updated", "rent_id", updated.ID(), "truck_id", updated.TruckID())
	return updated, nil
}

func (s *RentTruckService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.RentTruckRepository().Delete(ctx, id)
	})
}

func (s *RentTruckService) GetAll(ctx context.Context) ([]renttruck.RentTruck, error) {
	return s.uowFactory.Create().RentTruckRepository().List(ctx)
}

// GetRentalsByCustomerID fails with ErrObjectNotFound when the customer does not exist.
func (s *RentTruckService) GetRentalsByCustomerID(ctx context.Context, customerID int) ([]renttruck.RentTruck, error) {
	uow := s.uowFactory.Create()

	var found []renttruck.RentTruck
	err := inTx(ctx, uow, func() error {
		if _, err := uow.CustomerRepository().Get(ctx, customerID); err != nil {
			return err
		}

		var err error
		found, err = uow.RentTruckRepository().FindByCustomer(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ReturnTruck completes an ACTIVE rental on returnedOn. When the truck has a daily rate the
// total cost is recomputed over the days actually rented.
func (s *RentTruckService) ReturnTruck(ctx context.Context, id int, returnedOn time.Time) (renttruck.RentTruck, error) {
	uow := s.uowFactory.Create()

	var returned renttruck.RentTruck
	err := inTx(ctx, uow, func() error {
		rentals := uow.RentTruckRepository()
		trucks := uow.TruckRepository()

		rental, err := rentals.Get(ctx, id)
		if err != nil {
			return err
		}

		rented, err := trucks.Get(ctx, rental.TruckID())
		if err != nil {
			return err
		}

		cost := -1.0
		if rented.HasRate() && !rental.RentDate().IsZero() {
			cost = rented.CostFor(rental.RentDate(), returnedOn)
		}

		returned, err = rental.Return(returnedOn, cost)
		if err != nil {
			return err
		}

		if err = rentals.Save(ctx, returned); err != nil {
			return err
		}
		return trucks.Save(ctx, truck.NewBuilder().Copy(rented).SetAvailable(true).Build())
	})
	if err != nil {
		return renttruck.RentTruck{}, err
	}

	s.logger.InfoContext(ctx, "Truck returned",
		"rent_id", returned.ID(), "truck_id", returned.TruckID(), "total_cost", returned.TotalCost())
	return returned, nil
}

// CancelRental cancels an ACTIVE rental and frees its truck. The reason is optional.
func (s *RentTruckService) CancelRental(ctx context.Context, id int, reason string) (renttruck.RentTruck, error) {
	uow := s.uowFactory.Create()

	var cancelled renttruck.RentTruck
	err := inTx(ctx, uow, func() error {
		rentals := uow.RentTruckRepository()
		trucks := uow.TruckRepository()

		rental, err := rentals.Get(ctx, id)
		if err != nil {
			return err
		}

		cancelled, err = rental.Cancel(reason)
		if err != nil {
			return err
		}

		rented, err := trucks.Get(ctx, rental.TruckID())
		if err != nil {
			return err
		}

		if err = rentals.Save(ctx, cancelled); err != nil {
			return err
		}
		return trucks.Save(ctx, truck.NewBuilder().Copy(rented).SetAvailable(true).Build())
	})
	if err != nil {
		return renttruck.RentTruck{}, err
	}

	s.logger.InfoContext(ctx, "Rental cancelled",
		"rent_id", cancelled.ID(), "truck_id", cancelled.TruckID(), "reason", cancelled.CancellationReason())
	return cancelled, nil
}

// GetOverdueRentals lists ACTIVE rentals not returned by asOf's day.
func (s *RentTruckService) GetOverdueRentals(ctx context.Context, asOf time.Time) ([]renttruck.RentTruck, error) {
	return s.uowFactory.Create().RentTruckRepository().FindOverdue(ctx, kernel.DateOf(asOf))
}

// checkReferences makes sure the customer and both branches exist.
func (s *RentTruckService) checkReferences(ctx context.Context, uow RentTruckUoW, r renttruck.RentTruck) error {
	if _, err := uow.CustomerRepository().Get(ctx, r.CustomerID()); err != nil {
		return err
	}

	branches := uow.BranchRepository()
	if _, err := branches.Get(ctx, r.PickUpBranchID()); err != nil {
		return err
	}
	if r.DropOffBranchID() == r.PickUpBranchID() {
		return nil
	}
	_, err := branches.Get(ctx, r.DropOffBranchID())
	return err
}

// moveTruck hands a rental over from one truck to another.
func (s *RentTruckService) moveTruck(ctx context.Context, uow RentTruckUoW, fromID, toID int) error {
	trucks := uow.TruckRepository()

	next, err := trucks.Get(ctx, toID)
	if err != nil {
		return err
	}
	if !next.Available() {
		return errs.NewValueIsInvalidErrorWithCause("truckId", fmt.Errorf("truck %d is not available", toID))
	}

	previous, err := trucks.Get(ctx, fromID)
	if err != nil {
		return err
	}

	if err = trucks.Save(ctx, truck.NewBuilder().Copy(next).SetAvailable(false).Build()); err != nil {
		return err
	}
	return trucks.Save(ctx, truck.NewBuilder().Copy(previous).SetAvailable(true).Build())
}

// sameBooking reports whether two versions of a rental differ at most in payment.
func sameBooking(a, b renttruck.RentTruck) bool {
	return renttruck.NewBuilder().Copy(b).SetPaymentMade(a.PaymentMade()).Build().Equal(a)
}
