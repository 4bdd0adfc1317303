package services

import (
	"context"
	"fmt"
	"log/slog"

	"truckrental/internal/core/domain/model/truck"
	"truckrental/internal/pkg/errs"
)

type TruckService struct {
	uowFactory TruckUoWFactory
	logger     *slog.Logger
}

func NewTruckService(uowFactory TruckUoWFactory, logger *slog.Logger) *TruckService {
	return &TruckService{
		uowFactory: uowFactory,
		logger:     logger.With("component", "truck_service"),
	}
}

func (s *TruckService) Create(ctx context.Context, draft truck.Truck) (truck.Truck, error) {
	uow := s.uowFactory.Create()

	var created truck.Truck
	err := inTx(ctx, uow, func() error {
		trucks := uow.TruckRepository()

		id, err := trucks.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = truck.NewTruck(id, draft.VIN(), draft.Model(), draft.LicensePlate(), draft.DailyRate(), draft.Available())
		if err != nil {
			return err
		}

		return trucks.Save(ctx, created)
	})
	if err != nil {
		return truck.Truck{}, err
	}

	s.logger.InfoContext(ctx, "Truck added to fleet", "truck_id", created.ID(), "license_plate", created.LicensePlate())
	return created, nil
}

func (s *TruckService) Read(ctx context.Context, id int) (truck.Truck, error) {
	return s.uowFactory.Create().TruckRepository().Get(ctx, id)
}

// Update overrides the stored truck with the supplied fields. A truck cannot be marked
// available while an ACTIVE rental still holds it.
func (s *TruckService) Update(ctx context.Context, id int, changes truck.Changes) (truck.Truck, error) {
	uow := s.uowFactory.Create()

	var updated truck.Truck
	err := inTx(ctx, uow, func() error {
		trucks := uow.TruckRepository()

		existing, err := trucks.Get(ctx, id)
		if err != nil {
			return err
		}

		updated = truck.NewBuilder().
			Copy(existing).
			SetVIN(orCurrent(changes.VIN, existing.VIN())).
			SetModel(orCurrent(changes.Model, existing.Model())).
			SetLicensePlate(orCurrent(changes.LicensePlate, existing.LicensePlate())).
			SetDailyRate(orCurrent(changes.DailyRate, existing.DailyRate())).
			SetAvailable(orCurrentFlag(changes.Available, existing.Available())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		if updated.Available() && !existing.Available() {
			active, err := uow.RentTruckRepository().FindActiveByTruck(ctx, id)
			if err != nil {
				return err
			}
			if len(active) > 0 {
				return errs.NewValueIsInvalidErrorWithCause("available",
					fmt.Errorf("truck %d is on active rental %d", id, active[0].ID()))
			}
		}

		return trucks.Save(ctx, updated)
	})
	if err != nil {
		return truck.Truck{}, err
	}
	return updated, nil
}

func (s *TruckService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.TruckRepository().Delete(ctx, id)
	})
}

func (s *TruckService) GetAll(ctx context.Context) ([]truck.Truck, error) {
	return s.uowFactory.Create().TruckRepository().List(ctx)
}
