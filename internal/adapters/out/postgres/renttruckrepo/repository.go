package renttruckrepo

import (
	"context"
	"time"

	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/core/domain/model/renttruck"

	"gorm.io/gorm"
)

type GormRentTruckRepository struct {
	*gormrepo.Repository[renttruck.RentTruck, RentTruckDTO]
}

func NewGormRentTruckRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormRentTruckRepository {
	return &GormRentTruckRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[renttruck.RentTruck, RentTruckDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "rentId"),
	}
}

func (r *GormRentTruckRepository) FindByCustomer(ctx context.Context, customerID int) ([]renttruck.RentTruck, error) {
	return r.FindWhere(ctx, "customer_id = ?", customerID)
}

func (r *GormRentTruckRepository) FindActiveByTruck(ctx context.Context, truckID int) ([]renttruck.RentTruck, error) {
	return r.FindWhere(ctx, "truck_id = ? AND status = ?", truckID, renttruck.Active.String())
}

func (r *GormRentTruckRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]renttruck.RentTruck, error) {
	return r.FindWhere(ctx,
		"status = ? AND returned = ? AND return_date < ?",
		renttruck.Active.String(), false, kernel.DateOf(asOf),
	)
}
