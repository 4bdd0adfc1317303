package accidentreportrepo

import (
	"context"

	"truckrental/internal/adapters/out/postgres/gormrepo"
	"truckrental/internal/core/domain/model/accidentreport"

	"gorm.io/gorm"
)

type GormAccidentReportRepository struct {
	*gormrepo.Repository[accidentreport.AccidentReport, AccidentReportDTO]
}

func NewGormAccidentReportRepository(db *gorm.DB, tracker gormrepo.AggregateTracker) *GormAccidentReportRepository {
	return &GormAccidentReportRepository{
		Repository: gormrepo.New(db, tracker, gormrepo.Mapper[accidentreport.AccidentReport, AccidentReportDTO]{
			FromDomain: fromDomain,
			ToDomain:   toDomain,
		}, "accidentReportId"),
	}
}

func (r *GormAccidentReportRepository) FindByCustomer(
	ctx context.Context,
	customerID int,
) ([]accidentreport.AccidentReport, error) {
	return r.FindWhere(ctx, "customer_id = ?", customerID)
}
