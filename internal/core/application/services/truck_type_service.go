package services

import (
	"context"
	"log/slog"

	"truckrental/internal/core/domain/model/trucktype"
)

// TruckTypeService maintains the catalogue of truck categories.
type TruckTypeService struct {
	uowFactory TruckTypeUoWFactory
	logger     *slog.Logger
}

func NewTruckTypeService(uowFactory TruckTypeUoWFactory, logger *slog.Logger) *TruckTypeService {
	return &TruckTypeService{
		uowFactory: uowFactory,
		logger:     logger.With("component", "truck_type_service"),
	}
}

func (s *TruckTypeService) Create(ctx context.Context, draft trucktype.TruckType) (trucktype.TruckType, error) {
	uow := s.uowFactory.Create()

	var created trucktype.TruckType
	err := inTx(ctx, uow, func() error {
		truckTypes := uow.TruckTypeRepository()

		id, err := truckTypes.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = trucktype.NewTruckType(id, draft.Name(), draft.Description(), draft.LoadCapacity())
		if err != nil {
			return err
		}

		return truckTypes.Save(ctx, created)
	})
	if err != nil {
		return trucktype.TruckType{}, err
	}

	s.logger.InfoContext(ctx, "Truck type added", "truck_type_id", created.ID(), "name", created.Name())
	return created, nil
}

func (s *TruckTypeService) Read(ctx context.Context, id int) (trucktype.TruckType, error) {
	return s.uowFactory.Create().TruckTypeRepository().Get(ctx, id)
}

func (s *TruckTypeService) Update(ctx context.Context, id int, changes trucktype.TruckType) (trucktype.TruckType, error) {
	uow := s.uowFactory.Create()

	var updated trucktype.TruckType
	err := inTx(ctx, uow, func() error {
		truckTypes := uow.TruckTypeRepository()

		existing, err := truckTypes.Get(ctx, id)
		if err != nil {
			return err
		}

		updated = trucktype.NewBuilder().
			Copy(existing).
			SetName(orCurrent(changes.Name(), existing.Name())).
			SetDescription(orCurrent(changes.Description(), existing.Description())).
			SetLoadCapacity(orCurrent(changes.LoadCapacity(), existing.LoadCapacity())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		return truckTypes.Save(ctx, updated)
	})
	if err != nil {
		return trucktype.TruckType{}, err
	}
	return updated, nil
}

func (s *TruckTypeService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.TruckTypeRepository().Delete(ctx, id)
	})
}

func (s *TruckTypeService) GetAll(ctx context.Context) ([]trucktype.TruckType, error) {
	return s.uowFactory.Create().TruckTypeRepository().List(ctx)
}
