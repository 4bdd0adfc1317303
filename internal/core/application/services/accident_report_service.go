package services

import (
	"context"
	"log/slog"

	"truckrental/internal/core/domain/model/accidentreport"
)

type AccidentReportService struct {
	uowFactory AccidentReportUoWFactory
	logger     *slog.Logger
}

func NewAccidentReportService(uowFactory AccidentReportUoWFactory, logger *slog.Logger) *AccidentReportService {
	return &AccidentReportService{
		uowFactory: uowFactory,
		logger:     logger.With("component", "accident_report_service"),
	}
}

// Create files a report against an existing truck and customer.
func (s *AccidentReportService) Create(
	ctx context.Context,
	draft accidentreport.AccidentReport,
) (accidentreport.AccidentReport, error) {
	uow := s.uowFactory.Create()

	var created accidentreport.AccidentReport
	err := inTx(ctx, uow, func() error {
		reports := uow.AccidentReportRepository()

		id, err := reports.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = accidentreport.NewAccidentReport(
			id,
			draft.AccidentDate(),
			draft.Description(), draft.Location(),
			draft.DamageCost(),
			draft.TruckID(), draft.CustomerID(),
		)
		if err != nil {
			return err
		}

		if err = s.checkReferences(ctx, uow, created); err != nil {
			return err
		}

		return reports.Save(ctx, created)
	})
	if err != nil {
		return accidentreport.AccidentReport{}, err
	}

	s.logger.InfoContext(ctx, "Accident reported",
		"accident_report_id", created.ID(), "truck_id", created.TruckID(), "damage_cost", created.DamageCost())
	return created, nil
}

func (s *AccidentReportService) Read(ctx context.Context, id int) (accidentreport.AccidentReport, error) {
	return s.uowFactory.Create().AccidentReportRepository().Get(ctx, id)
}

func (s *AccidentReportService) Update(
	ctx context.Context,
	id int,
	changes accidentreport.AccidentReport,
) (accidentreport.AccidentReport, error) {
	uow := s.uowFactory.Create()

	var updated accidentreport.AccidentReport
	err := inTx(ctx, uow, func() error {
		reports := uow.AccidentReportRepository()

		existing, err := reports.Get(ctx, id)
		if err != nil {
			return err
		}

		updated = accidentreport.NewBuilder().
			Copy(existing).
			SetAccidentDate(orCurrent(changes.AccidentDate(), existing.AccidentDate())).
			SetDescription(orCurrent(changes.Description(), existing.Description())).
			SetLocation(orCurrent(changes.Location(), existing.Location())).
			SetDamageCost(orCurrent(changes.DamageCost(), existing.DamageCost())).
			SetTruckID(orCurrent(changes.TruckID(), existing.TruckID())).
			SetCustomerID(orCurrent(changes.CustomerID(), existing.CustomerID())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		if updated.TruckID() != existing.TruckID() || updated.CustomerID() != existing.CustomerID() {
			if err = s.checkReferences(ctx, uow, updated); err != nil {
				return err
			}
		}

		return reports.Save(ctx, updated)
	})
	if err != nil {
		return accidentreport.AccidentReport{}, err
	}
	return updated, nil
}

func (s *AccidentReportService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.AccidentReportRepository().Delete(ctx, id)
	})
}

func (s *AccidentReportService) GetAll(ctx context.Context) ([]accidentreport.AccidentReport, error) {
	return s.uowFactory.Create().AccidentReportRepository().List(ctx)
}

// GetReportsByCustomerID fails with ErrObjectNotFound when the customer does not exist.
func (s *AccidentReportService) GetReportsByCustomerID(
	ctx context.Context,
	customerID int,
) ([]accidentreport.AccidentReport, error) {
	uow := s.uowFactory.Create()

	var found []accidentreport.AccidentReport
	err := inTx(ctx, uow, func() error {
		if _, err := uow.CustomerRepository().Get(ctx, customerID); err != nil {
			return err
		}

		var err error
		found, err = uow.AccidentReportRepository().FindByCustomer(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *AccidentReportService) checkReferences(
	ctx context.Context,
	uow AccidentReportUoW,
	report accidentreport.AccidentReport,
) error {
	if _, err := uow.TruckRepository().Get(ctx, report.TruckID()); err != nil {
		return err
	}
	_, err := uow.CustomerRepository().Get(ctx, report.CustomerID())
	return err
}
