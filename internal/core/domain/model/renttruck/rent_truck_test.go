package renttruck_test

import (
	"errors"
	"testing"
	"time"

	"truckrental/internal/core/domain/model/renttruck"
	"truckrental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rentOn   = time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	returnOn = time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC)
)

func newRental(t *testing.T) renttruck.RentTruck {
	t.Helper()
	r, err := renttruck.NewRentTruck(10, rentOn, returnOn, 1500, true, false, 1, 2, 3, 4, renttruck.Active)
	require.NoError(t, err)
	return r
}

func TestNewRentTruck(t *testing.T) {
	t.Run("should copy every input", func(t *testing.T) {
		r := newRental(t)

		require.NoError(t, r.Validate())
		assert.Equal(t, 10, r.ID())
		assert.True(t, rentOn.Equal(r.RentDate()))
		assert.True(t, returnOn.Equal(r.ReturnDate()))
		assert.InDelta(t, 1500.0, r.TotalCost(), 0.001)
		assert.True(t, r.PaymentMade())
		assert.False(t, r.Returned())
		assert.Equal(t, 1, r.CustomerID())
		assert.Equal(t, 2, r.TruckID())
		assert.Equal(t, 3, r.PickUpBranchID())
		assert.Equal(t, 4, r.DropOffBranchID())
	})

	t.Run("should force active status", func(t *testing.T) {
		for _, requested := range []renttruck.Status{renttruck.Completed, renttruck.Cancelled, ""} {
			r, err := renttruck.NewRentTruck(11, rentOn, returnOn, 900, false, false, 1, 2, 3, 3, requested)

			require.NoError(t, err)
			assert.Equal(t, renttruck.Active, r.Status())
		}
	})

	t.Run("should reject missing references and return date", func(t *testing.T) {
		r, err := renttruck.NewRentTruck(-1, rentOn, time.Time{}, 10, false, false, 0, 0, 0, 0, renttruck.Active)

		require.Error(t, err)
		assert.Equal(t, renttruck.RentTruck{}, r)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
		for _, field := range []string{"rentId", "returnDate", "customerId", "truckId", "pickUpBranchId", "dropOffBranchId"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject a negative cost", func(t *testing.T) {
		_, err := renttruck.NewRentTruck(12, rentOn, returnOn, -5, false, false, 1, 2, 3, 4, renttruck.Active)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalCost")
	})
}

func TestRentTruck_Return(t *testing.T) {
	r := newRental(t)
	backOn := time.Date(2026, time.May, 6, 16, 30, 0, 0, time.UTC)

	t.Run("should complete with a recomputed cost", func(t *testing.T) {
		returned, err := r.Return(backOn, 3000)

		require.NoError(t, err)
		assert.True(t, returned.Returned())
		assert.Equal(t, renttruck.Completed, returned.Status())
		assert.Equal(t, time.Date(2026, time.May, 6, 0, 0, 0, 0, time.UTC), returned.ReturnDate())
		assert.InDelta(t, 3000.0, returned.TotalCost(), 0.001)
		assert.Equal(t, renttruck.Active, r.Status())
	})

	t.Run("should keep the booked cost when none is given", func(t *testing.T) {
		returned, err := r.Return(backOn, -1)

		require.NoError(t, err)
		assert.InDelta(t, r.TotalCost(), returned.TotalCost(), 0.001)
	})

	t.Run("should not return twice", func(t *testing.T) {
		returned, err := r.Return(backOn, -1)
		require.NoError(t, err)

		_, err = returned.Return(backOn, -1)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a return date", func(t *testing.T) {
		_, err := r.Return(time.Time{}, -1)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRentTruck_Cancel(t *testing.T) {
	r := newRental(t)

	cancelled, err := r.Cancel("  Booked the wrong dates ")
	require.NoError(t, err)
	assert.Equal(t, renttruck.Cancelled, cancelled.Status())
	assert.Equal(t, "Booked the wrong dates", cancelled.CancellationReason())
	assert.Empty(t, r.CancellationReason())

	_, err = cancelled.Cancel("")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = cancelled.Return(returnOn, -1)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRentTruck_DateOrder(t *testing.T) {
	t.Run("should reject a return date before the rent date", func(t *testing.T) {
		_, err := renttruck.NewRentTruck(13, returnOn, rentOn, 0, false, false, 1, 2, 3, 4, renttruck.Active)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "returnDate")
	})

	t.Run("should accept a same-day rental", func(t *testing.T) {
		_, err := renttruck.NewRentTruck(14, rentOn, rentOn.Add(15*time.Hour), 0, false, false, 1, 2, 3, 4, renttruck.Active)

		assert.NoError(t, err)
	})

	t.Run("should leave an unset rent date to the caller", func(t *testing.T) {
		_, err := renttruck.NewRentTruck(15, time.Time{}, rentOn, 0, false, false, 1, 2, 3, 4, renttruck.Active)

		assert.NoError(t, err)
	})

	t.Run("should not return before the rent date", func(t *testing.T) {
		_, err := newRental(t).Return(rentOn.AddDate(0, 0, -1), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "returnDate")
	})

	t.Run("should catch a reordered copy on validate", func(t *testing.T) {
		reordered := renttruck.NewBuilder().Copy(newRental(t)).SetRentDate(returnOn.AddDate(0, 0, 1)).Build()

		assert.ErrorIs(t, reordered.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestRentTruck_CopyAndEqual(t *testing.T) {
	r := newRental(t)

	copied := renttruck.NewBuilder().Copy(r).Build()
	assert.True(t, copied.Equal(r))
	assert.Equal(t, r.String(), copied.String())

	paid := renttruck.NewBuilder().Copy(r).SetPaymentMade(false).Build()
	assert.False(t, paid.Equal(r))
	explained := renttruck.NewBuilder().Copy(r).SetCancellationReason("Duplicate booking").Build()
	assert.False(t, explained.Equal(r))
	assert.True(t, r.PaymentMade())
}

func TestRentTruck_Validate(t *testing.T) {
	var zero renttruck.RentTruck
	assert.ErrorIs(t, zero.Validate(), renttruck.ErrRentTruckIsNotConstructed)

	bad := renttruck.NewBuilder().Copy(newRental(t)).SetStatus("LOST").Build()
	assert.ErrorIs(t, bad.Validate(), errs.ErrValueIsInvalid)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"ACTIVE", "COMPLETED", "CANCELLED"} {
		got, err := renttruck.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	_, err := renttruck.ParseStatus("active")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
