package branchrepo

import (
	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/branch"

	"gorm.io/gorm"
)

type GormBranchRepository struct {
	*gormrepo.Repository[branch.Branch, BranchDTO]
}

func NewGormBranchRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormBranchRepository {
	return &GormBranchRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[branch.Branch, BranchDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "branchId"),
	}
}
