package insurancerepo

import (
	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/insurance"

	"gorm.io/gorm"
)

type GormInsuranceRepository struct {
	*gormrepo.Repository[insurance.Insurance, InsuranceDTO]
}

func NewGormInsuranceRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormInsuranceRepository {
	return &GormInsuranceRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[insurance.Insurance, InsuranceDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "insuranceId"),
	}
}
