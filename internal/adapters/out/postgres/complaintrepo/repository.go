package complaintrepo

import (
	"context"

	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/complaint"

	"gorm.io/gorm"
)

type GormComplaintRepository struct {
	*gormrepo.Repository[complaint.Complaint, ComplaintDTO]
}

func NewGormComplaintRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[complaint.Complaint, ComplaintDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "complaintId"),
	}
}

func (r *GormComplaintRepository) FindByCustomer(ctx context.Context, customerID int) ([]complaint.Complaint, error) {
	return r.FindWhere(ctx, "customer_id = ?", customerID)
}
