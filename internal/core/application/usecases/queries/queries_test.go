package queries_test

import (
	"testing"
	"time"

	"truckrental/internal/core/application/usecases/queries"
	"truckrental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOverdueRentalsQuery_TruncatesToDay(t *testing.T) {
	query, err := queries.NewGetOverdueRentalsQuery(time.Date(2026, 10, 19, 18, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), query.AsOf())
}

func TestNewGetOverdueRentalsQuery_ZeroDate(t *testing.T) {
	_, err := queries.NewGetOverdueRentalsQuery(time.Time{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOverdueRentalsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetOverdueRentalsQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetOverdueRentalsQueryIsNotConstructed)
}

func TestGetFleetSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	require.NoError(t, queries.NewGetFleetSummaryQuery().Validate())
	assert.ErrorIs(t, queries.GetFleetSummaryQuery{}.Validate(), queries.ErrGetFleetSummaryQueryIsNotConstructed)
}
