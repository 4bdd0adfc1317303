package queries_test

import (
	"context"
	"testing"
	"time"

	"truckrental/internal/core/application/usecases/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestGetOverdueRentalsQueryHandler_Handle(t *testing.T) {
	db, mock := newMockDB(t)
	handler := queries.NewGetOverdueRentalsQueryHandler(db)
	asOf := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM rent_trucks r\s+JOIN customers c`).
		WithArgs("ACTIVE", false, asOf).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "return_date", "id", "first_name", "last_name", "email", "cell_no", "id", "license_plate",
		}).AddRow(4, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), 2, "Thandi", "Mokoena",
			"thandi@example.com", "0821234567", 3, "CA 123-456"))

	query, err := queries.NewGetOverdueRentalsQuery(asOf)
	require.NoError(t, err)

	rows, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].RentID)
	assert.Equal(t, 3, rows[0].DaysOverdue)
	assert.Equal(t, "Thandi Mokoena", rows[0].CustomerName)
	assert.Equal(t, "CA 123-456", rows[0].LicensePlate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOverdueRentalsQueryHandler_RejectsUnconstructedQuery(t *testing.T) {
	db, mock := newMockDB(t)
	handler := queries.NewGetOverdueRentalsQueryHandler(db)

	_, err := handler.Handle(context.Background(), queries.GetOverdueRentalsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetOverdueRentalsQueryIsNotConstructed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFleetSummaryQueryHandler_Handle(t *testing.T) {
	db, mock := newMockDB(t)
	now := func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	handler := queries.NewGetFleetSummaryQueryHandler(db, now)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trucks`).
		WithArgs("ACTIVE", "ACTIVE", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d"}).AddRow(10, 6, 4, 1))

	summary, err := handler.Handle(context.Background(), queries.NewGetFleetSummaryQuery())
	require.NoError(t, err)
	assert.Equal(t, queries.GetFleetSummaryQueryResponse{
		TotalTrucks:     10,
		AvailableTrucks: 6,
		ActiveRentals:   4,
		OverdueRentals:  1,
	}, summary)
}
