package guard_test

import (
	"errors"
	"sync"
	"testing"

	"truckrental/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_with_and_without_error", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("rental not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a value built by a constructor.
func TestConstructorGuardEmbedded(t *testing.T) {
	type dailyRate struct {
		cents int
		guard guard.ConstructorGuard
	}

	errRateNotConstructed := errors.New("dailyRate must be created via newDailyRate")

	newDailyRate := func(cents int) (dailyRate, error) {
		if cents <= 0 {
			return dailyRate{}, errors.New("cents must be positive")
		}
		return dailyRate{cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(r dailyRate) error {
		return r.guard.Validate(errRateNotConstructed)
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		rate, err := newDailyRate(45000)

		require.NoError(t, err)
		require.NoError(t, validate(rate))
		assert.Equal(t, 45000, rate.cents)
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		rate := dailyRate{cents: 45000}

		require.ErrorIs(t, validate(rate), errRateNotConstructed)
	})

	t.Run("failed_constructor_returns_invalid_zero_value", func(t *testing.T) {
		rate, err := newDailyRate(-1)

		require.Error(t, err)
		require.ErrorIs(t, validate(rate), errRateNotConstructed)
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}

func TestConstructorGuardCopy(t *testing.T) {
	original := guard.NewConstructorGuard()
	copied := original

	require.NoError(t, copied.Validate(nil))
	require.NoError(t, original.Validate(nil))
}
