package trucktyperepo

import (
	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/trucktype"

	"gorm.io/gorm"
)

type GormTruckTypeRepository struct {
	*gormrepo.Repository[trucktype.TruckType, TruckTypeDTO]
}

func NewGormTruckTypeRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormTruckTypeRepository {
	return &GormTruckTypeRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[trucktype.TruckType, TruckTypeDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "truckTypeId"),
	}
}
