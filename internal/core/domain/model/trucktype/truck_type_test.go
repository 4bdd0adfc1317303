package trucktype_test

import (
	"testing"

	"truckrental/internal/core/domain/model/trucktype"
	"truckrental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTruckType(t *testing.T) {
	tt, err := trucktype.NewTruckType(1, "4-ton box", "Closed body with tail lift", 4)

	require.NoError(t, err)
	require.NoError(t, tt.Validate())
	assert.Equal(t, 1, tt.ID())
	assert.Equal(t, "4-ton box", tt.Name())
	assert.Equal(t, "Closed body with tail lift", tt.Description())
	assert.InDelta(t, 4.0, tt.LoadCapacity(), 0.001)

	_, err = trucktype.NewTruckType(2, "Flatbed", "", 0)
	assert.NoError(t, err, "description and capacity are optional")

	_, err = trucktype.NewTruckType(0, " ", "", 80)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truckTypeId")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestTruckType_CopyAndEqual(t *testing.T) {
	tt, err := trucktype.NewTruckType(3, "Refrigerated van", "Keeps cargo at 2-8 C", 1.5)
	require.NoError(t, err)

	assert.True(t, trucktype.NewBuilder().Copy(tt).Build().Equal(tt))
	bigger := trucktype.NewBuilder().Copy(tt).SetLoadCapacity(3).Build()
	assert.False(t, bigger.Equal(tt))
	assert.Equal(t, `TruckType{id=3, name="Refrigerated van", loadCapacity=1.5}`, tt.String())

	var zero trucktype.TruckType
	assert.ErrorIs(t, zero.Validate(), trucktype.ErrTruckTypeIsNotConstructed)
}
