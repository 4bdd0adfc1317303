package services

import (
	"context"
	"log/slog"

	"truckrental/internal/core/domain/model/branch"
)

type BranchService struct {
	uowFactory BranchUoWFactory
	logger     *slog.Logger
}

func NewBranchService(uowFactory BranchUoWFactory, logger *slog.Logger) *BranchService {
	return &BranchService{
		uowFactory: uowFactory,
		logger:     logger.With("component", "branch_service"),
	}
}

func (s *BranchService) Create(ctx context.Context, draft branch.Branch) (branch.Branch, error) {
	uow := s.uowFactory.Create()

	var created branch.Branch
	err := inTx(ctx, uow, func() error {
		branches := uow.BranchRepository()

		id, err := branches.NextID(ctx)
		if err != nil {
			return err
		}

		created, err = branch.NewBranch(id, draft.Name(), draft.Address())
		if err != nil {
			return err
		}

		return branches.Save(ctx, created)
	})
	if err != nil {
		return branch.Branch{}, err
	}

	s.logger.InfoContext(ctx, "Branch opened", "branch_id", created.ID(), "name", created.Name())
	return created, nil
}

func (s *BranchService) Read(ctx context.Context, id int) (branch.Branch, error) {
	return s.uowFactory.Create().BranchRepository().Get(ctx, id)
}

func (s *BranchService) Update(ctx context.Context, id int, changes branch.Branch) (branch.Branch, error) {
	uow := s.uowFactory.Create()

	var updated branch.Branch
	err := inTx(ctx, uow, func() error {
		branches := uow.BranchRepository()

		existing, err := branches.Get(ctx, id)
		if err != nil {
			return err
		}

		updated = branch.NewBuilder().
			Copy(existing).
			SetName(orCurrent(changes.Name(), existing.Name())).
			SetAddress(orCurrent(changes.Address(), existing.Address())).
			Build()
		if err = updated.Validate(); err != nil {
			return err
		}

		return branches.Save(ctx, updated)
	})
	if err != nil {
		return branch.Branch{}, err
	}
	return updated, nil
}

func (s *BranchService) Delete(ctx context.Context, id int) error {
	uow := s.uowFactory.Create()
	return inTx(ctx, uow, func() error {
		return uow.BranchRepository().Delete(ctx, id)
	})
}

func (s *BranchService) GetAll(ctx context.Context) ([]branch.Branch, error) {
	return s.uowFactory.Create().BranchRepository().List(ctx)
}
