package truckrepo

import (
	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/truck"

	"gorm.io/gorm"
)

type GormTruckRepository struct {
	*gormrepo.Repository[truck.Truck, TruckDTO]
}

func NewGormTruckRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[truck.Truck, TruckDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "truckId"),
	}
}
