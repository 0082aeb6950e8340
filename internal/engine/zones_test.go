package engine

import (
	"testing"

	"github.com/piwi3910/vanload/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDeliveryZones_Disabled(t *testing.T) {
	shape, err := model.NewVehicleShape(30, 10, 10)
	require.NoError(t, err)
	parcels := []model.Parcel{
		mustParcel(t, 0, 10, 10, 10, 0),
		mustParcel(t, 1, 10, 10, 10, 1),
	}
	zones := PlanDeliveryZones(parcels, shape, false)
	assert.Empty(t, zones)
}

func TestPlanDeliveryZones_EarlierDeliveryGetsFartherReach(t *testing.T) {
	shape, err := model.NewVehicleShape(30, 10, 10)
	require.NoError(t, err)
	parcels := []model.Parcel{
		mustParcel(t, 0, 10, 10, 10, 0),
		mustParcel(t, 1, 10, 10, 10, 1),
	}
	zones := PlanDeliveryZones(parcels, shape, true)

	z0, ok0 := zones.Lookup(0)
	z1, ok1 := zones.Lookup(1)
	require.True(t, ok0)
	require.True(t, ok1)
	// Proportional strategy: earlier delivery (0) sits nearer the rear,
	// so its interval must reach at least as far as delivery 1's.
	assert.GreaterOrEqual(t, z0.Max, z1.Max)
}

func TestPlanDeliveryZones_UnconstrainedSpansFullLength(t *testing.T) {
	shape, err := model.NewVehicleShape(30, 10, 10)
	require.NoError(t, err)
	parcels := []model.Parcel{
		mustParcel(t, 0, 10, 10, 10, 0),
		mustParcel(t, 1, 10, 10, 10, model.UnconstrainedDelivery),
	}
	zones := PlanDeliveryZones(parcels, shape, true)

	z, ok := zones.Lookup(model.UnconstrainedDelivery)
	require.True(t, ok)
	assert.Equal(t, model.Zone{Min: 0, Max: shape.L}, z)
}

func TestPlanDeliveryZones_CumulativeStrategyChosenForManyGroups(t *testing.T) {
	shape, err := model.NewVehicleShape(300, 10, 10)
	require.NoError(t, err)

	var parcels []model.Parcel
	for i := 0; i < 25; i++ {
		parcels = append(parcels, mustParcel(t, i, 1, 1, 1, i))
	}
	zones := PlanDeliveryZones(parcels, shape, true)

	first, ok := zones.Lookup(0)
	require.True(t, ok)
	last, ok := zones.Lookup(24)
	require.True(t, ok)
	assert.Equal(t, 0, first.Min)
	assert.Equal(t, 0, last.Min)
	assert.Greater(t, first.Max, last.Max)
}

func TestPlanDeliveryZones_ProportionalRespectsMinimumLength(t *testing.T) {
	shape, err := model.NewVehicleShape(500, 50, 50)
	require.NoError(t, err)

	parcels := []model.Parcel{
		mustParcel(t, 0, 40, 10, 10, 0),
		mustParcel(t, 1, 1, 1, 1, 1),
	}
	zones := PlanDeliveryZones(parcels, shape, true)

	z0, ok := zones.Lookup(0)
	require.True(t, ok)
	// With ample vehicle length the minimum-length floor (3x the group's
	// largest single dimension) is never clipped away.
	assert.GreaterOrEqual(t, z0.Max-z0.Min, 3*40)
}
