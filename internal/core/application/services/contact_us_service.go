package services

import (
	"context"
	"log/slog"

	"truckrental/internal/core/domain/model/contactus"
)

type ContactUsService struct {
	uowFactory ContactUsUoWFactory
	logger     *slog.Logger
}

func NewContactUsService(uowFactory ContactUsUoWFactory, logger *slog.Logger) *ContactUsService {
	return &ContactUsService{
		uowFactory: uowFactory,
		logger:     logger.With("component", "contact_us_service"),
	}
}

func (s *ContactUsService) Create(ctx context.Context, draft contactus.ContactUs) (contactus.ContactUs, error) {
	uow := s.uowFactory.Create()

	var created contactus.ContactUs
	err := inTx(ctx, uow, func() error {
		contacts := uow.ContactUsRepository()

		id, err := contacts.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = contactus.NewContactUs(id, draft.Email(), draft.Phone(), draft.BusinessHours(), draft.Address())
		if err != nil {
			return err
		}

		return contacts.Save(ctx, created)
	})
	if err != nil {
		return contactus.ContactUs{}, err
	}
	return created, nil
}

func (s *ContactUsService) Read(ctx context.Context, id int) (contactus.ContactUs, error) {
	return s.uowFactory.Create().ContactUsRepository().Get(ctx, id)
}

func (s *ContactUsService) Update(ctx context.Context, id int, changes contactus.ContactUs) (contactus.ContactUs, error) {
	uow := s.uowFactory.Create()

	var updated contactus.ContactUs
	err := inTx(ctx, uow, func() error {
		contacts := uow.ContactUsRepository()

		existing, err := contacts.Get(ctx, id)
		if err != nil {
			return err
		}

		updated = contactus.NewBuilder().
			Copy(existing).
			SetEmail(orCurrent(changes.Email(), existing.Email())).
			SetPhone(orCurrent(changes.Phone(), existing.Phone())).
			SetBusinessHours(orCurrent(changes.BusinessHours(), existing.BusinessHours())).
			SetAddress(orCurrent(changes.Address(), existing.Address())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		return contacts.Save(ctx, updated)
	})
	if err != nil {
		return contactus.ContactUs{}, err
	}

	s.logger.InfoContext(ctx, "Contact details changed", "contact_us_id", updated.ID())
	return updated, nil
}

func (s *ContactUsService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.ContactUsRepository().Delete(ctx, id)
	})
}

func (s *ContactUsService) GetAll(ctx context.Context) ([]contactus.ContactUs, error) {
	return s.uowFactory.Create().ContactUsRepository().List(ctx)
}
