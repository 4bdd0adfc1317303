package queries

import (
	"context"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/core/domain/model/renttruck"

	"gorm.io/gorm"
)

type GetFleetSummaryQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetFleetSummaryQueryHandler(db *gorm.DB, now func() time.Time) GetFleetSummaryQueryHandler {
	return GetFleetSummaryQueryHandler{db: db, now: now}
}

func (h GetFleetSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetFleetSummaryQuery,
) (GetFleetSummaryQueryResponse, error) {
	var summary GetFleetSummaryQueryResponse
	if err := query.Validate(); err != nil {
		return summary, err
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM trucks),
			(SELECT COUNT(*) FROM trucks WHERE available),
			(SELECT COUNT(*) FROM rent_trucks WHERE status = ?),
			(SELECT COUNT(*) FROM rent_trucks WHERE status = ? AND NOT returned AND return_date < ?)
	`, renttruck.Active.String(), renttruck.Active.String(), kernel.DateOf(h.now())).
		Row().
		Scan(&summary.TotalTrucks, &summary.AvailableTrucks, &summary.ActiveRentals, &summary.OverdueRentals)
	if err != nil {
		return GetFleetSummaryQueryResponse{}, err
	}

	return summary, nil
}
