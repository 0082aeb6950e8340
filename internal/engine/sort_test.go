package engine

import (
	"testing"

	"github.com/piwi3910/vanload/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSortParcels_ConstrainedBeforeUnconstrained(t *testing.T) {
	parcels := []model.Parcel{
		mustParcel(t, 0, 1, 1, 1, model.UnconstrainedDelivery),
		mustParcel(t, 1, 1, 1, 1, 5),
	}
	sorted := sortParcels(parcels, model.HeuristicVolume)
	assert.Equal(t, 1, sorted[0].Index)
	assert.Equal(t, 0, sorted[1].Index)
}

func TestSortParcels_AscendingDeliveryTimeAmongConstrained(t *testing.T) {
	parcels := []model.Parcel{
		mustParcel(t, 0, 1, 1, 1, 3),
		mustParcel(t, 1, 1, 1, 1, 1),
		mustParcel(t, 2, 1, 1, 1, 2),
	}
	sorted := sortParcels(parcels, model.HeuristicVolume)
	assert.Equal(t, []int{1, 2, 0}, []int{sorted[0].Index, sorted[1].Index, sorted[2].Index})
}

func TestSortParcels_DescendingVolumeWithinSameDeliveryTime(t *testing.T) {
	parcels := []model.Parcel{
		mustParcel(t, 0, 2, 2, 2, 0),
		mustParcel(t, 1, 4, 4, 4, 0),
		mustParcel(t, 2, 3, 3, 3, 0),
	}
	sorted := sortParcels(parcels, model.HeuristicVolume)
	assert.Equal(t, []int{1, 2, 0}, []int{sorted[0].Index, sorted[1].Index, sorted[2].Index})
}

func TestSortParcels_TiesKeepInsertionOrder(t *testing.T) {
	parcels := []model.Parcel{
		mustParcel(t, 0, 2, 2, 2, model.UnconstrainedDelivery),
		mustParcel(t, 1, 2, 2, 2, model.UnconstrainedDelivery),
		mustParcel(t, 2, 2, 2, 2, model.UnconstrainedDelivery),
	}
	sorted := sortParcels(parcels, model.HeuristicVolume)
	assert.Equal(t, []int{0, 1, 2}, []int{sorted[0].Index, sorted[1].Index, sorted[2].Index})
}

func TestSortParcels_HeuristicChangesSecondaryKey(t *testing.T) {
	// Same volume and longest side, different height -> the height
	// heuristic puts the taller parcel first.
	parcels := []model.Parcel{
		mustParcel(t, 0, 8, 1, 1, model.UnconstrainedDelivery),
		mustParcel(t, 1, 1, 1, 8, model.UnconstrainedDelivery),
	}
	byHeight := sortParcels(parcels, model.HeuristicHeight)
	assert.Equal(t, 1, byHeight[0].Index)
	assert.Equal(t, 0, byHeight[1].Index)
}

func TestSortParcels_DoesNotMutateInput(t *testing.T) {
	parcels := []model.Parcel{
		mustParcel(t, 0, 1, 1, 1, 3),
		mustParcel(t, 1, 1, 1, 1, 1),
	}
	_ = sortParcels(parcels, model.HeuristicVolume)
	assert.Equal(t, 0, parcels[0].Index)
	assert.Equal(t, 1, parcels[1].Index)
}
