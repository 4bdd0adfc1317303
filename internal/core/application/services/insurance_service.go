package services

import (
	"context"
	"log/slog"

	"truckrental/internal/core/domain/model/insurance"
)

type InsuranceService struct {
	uowFactory InsuranceUoWFactory
	logger     *slog.Logger
}

func NewInsuranceService(uowFactory InsuranceUoWFactory, logger *slog.Logger) *InsuranceService {
	return &InsuranceService{
		uowFactory: uowFactory,
		logger:     logger.With("component", "insurance_service"),
	}
}

// Create insures an existing truck.
func (s *InsuranceService) Create(ctx context.Context, draft insurance.Insurance) (insurance.Insurance, error) {
	uow := s.uowFactory.Create()

	var created insurance.Insurance
	err := inTx(ctx, uow, func() error {
		policies := uow.InsuranceRepository()

		id, err := policies.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = insurance.NewInsurance(
			id,
			draft.InsuranceType(), draft.Provider(), draft.PolicyNumber(),
			draft.CoverageAmount(),
			draft.StartDate(),
			draft.TruckID(),
		)
		if err != nil {
			return err
		}

		if _, err = uow.TruckRepository().Get(ctx, created.TruckID()); err != nil {
			return err
		}

		return policies.Save(ctx, created)
	})
	if err != nil {
		return insurance.Insurance{}, err
	}

	s.logger.InfoContext(ctx, "Truck insured", "insurance_id", created.ID(), "truck_id", created.TruckID())
	return created, nil
}

func (s *InsuranceService) Read(ctx context.Context, id int) (insurance.Insurance, error) {
	return s.uowFactory.Create().InsuranceRepository().Get(ctx, id)
}

func (s *InsuranceService) Update(ctx context.Context, id int, changes insurance.Insurance) (insurance.Insurance, error) {
	uow := s.uowFactory.Create()

	var updated insurance.Insurance
	err := inTx(ctx, uow, func() error {
		policies := uow.InsuranceRepository()

		existing, err := policies.Get(ctx, id)
		if err != nil {
			return err
		}

		updated = insurance.NewBuilder().
			Copy(existing).
			SetInsuranceType(orCurrent(changes.InsuranceType(), existing.InsuranceType())).
			SetProvider(orCurrent(changes.Provider(), existing.Provider())).
			SetPolicyNumber(orCurrent(changes.PolicyNumber(), existing.PolicyNumber())).
			SetCoverageAmount(orCurrent(changes.CoverageAmount(), existing.CoverageAmount())).
			SetStartDate(orCurrent(changes.StartDate(), existing.StartDate())).
			SetTruckID(orCurrent(changes.TruckID(), existing.TruckID())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		if updated.TruckID() != existing.TruckID() {
			if _, err = uow.TruckRepository().Get(ctx, updated.TruckID()); err != nil {
				return err
			}
		}

		return policies.Save(ctx, updated)
	})
	if err != nil {
		return insurance.Insurance{}, err
	}
	return updated, nil
}

func (s *InsuranceService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.InsuranceRepository().Delete(ctx, id)
	})
}

func (s *InsuranceService) GetAll(ctx context.Context) ([]insurance.Insurance, error) {
	return s.uowFactory.Create().InsuranceRepository().List(ctx)
}
