package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"truckrental/internal/core/application/usecases/queries"
	"truckrental/internal/core/domain/model/renttruck"
	"truckrental/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return today.Add(8 * time.Hour)
}

type mockOverdueFinder struct{ mock.Mock }

func (m *mockOverdueFinder) GetOverdueRentals(ctx context.Context, asOf time.Time) ([]renttruck.RentTruck, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]renttruck.RentTruck), args.Error(1)
}

type mockFleetSummaryHandler struct{ mock.Mock }

func (m *mockFleetSummaryHandler) Handle(
	ctx context.Context,
	query queries.GetFleetSummaryQuery,
) (queries.GetFleetSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetFleetSummaryQueryResponse), args.Error(1)
}

func TestOverdueRentalJob_Run(t *testing.T) {
	rental, err := renttruck.NewRentTruck(4, today.AddDate(0, 0, -6), today.AddDate(0, 0, -2), 600,
		true, false, 1, 2, 3, 3, renttruck.Active)
	require.NoError(t, err)

	finder := &mockOverdueFinder{}
	finder.On("GetOverdueRentals", mock.Anything, today).Return([]renttruck.RentTruck{rental}, nil).Once()

	var buf bytes.Buffer
	job := NewOverdueRentalJob(finder, fixedClock, "@daily", logging.NewWithWriter(&buf, "info", "json"))

	count, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, buf.String(), `"msg":"Rental overdue"`)
	assert.Contains(t, buf.String(), `"days_overdue":2`)
	finder.AssertExpectations(t)
}

func TestOverdueRentalJob_RunFailure(t *testing.T) {
	finder := &mockOverdueFinder{}
	finder.On("GetOverdueRentals", mock.Anything, today).
		Return([]renttruck.RentTruck(nil), errors.New("database unavailable")).Once()

	var buf bytes.Buffer
	job := NewOverdueRentalJob(finder, fixedClock, "@daily", logging.NewWithWriter(&buf, "info", "json"))

	_, err := job.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, buf.String(), "Overdue rental job failed")
}

func TestOverdueRentalJob_StartRejectsBadSchedule(t *testing.T) {
	job := NewOverdueRentalJob(&mockOverdueFinder{}, fixedClock, "every morning", slog.New(slog.DiscardHandler))

	assert.Error(t, job.Start())
}

func TestFleetSummaryJob_Run(t *testing.T) {
	handler := &mockFleetSummaryHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetFleetSummaryQueryResponse{
		TotalTrucks:     12,
		AvailableTrucks: 9,
		ActiveRentals:   3,
	}, nil).Once()

	var buf bytes.Buffer
	job := NewFleetSummaryJob(handler, "@hourly", logging.NewWithWriter(&buf, "info", "json"))

	require.NoError(t, job.Run(context.Background()))
	assert.Contains(t, buf.String(), `"available_trucks":9`)
	handler.AssertExpectations(t)
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	jm := NewJobManager(&mockOverdueFinder{}, &mockFleetSummaryHandler{}, fixedClock, Schedules{
		OverdueRentals: "0 8 * * *",
		FleetSummary:   "@hourly",
	}, slog.New(slog.DiscardHandler))

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartAllFailsOnBadSchedule(t *testing.T) {
	jm := NewJobManager(&mockOverdueFinder{}, &mockFleetSummaryHandler{}, fixedClock, Schedules{
		OverdueRentals: "0 8 * * *",
		FleetSummary:   "not a schedule",
	}, slog.New(slog.DiscardHandler))

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fleet summary job")
}
