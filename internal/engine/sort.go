package engine

import (
	"sort"

	"github.com/piwi3910/vanload/internal/model"
)

// sortParcels orders parcels by a two-level key: constrained parcels
// (delivery time >= 0) before unconstrained, ordered by ascending
// delivery time; within each group, descending by the heuristic's scalar
// key. Ties are broken by original insertion order (sort.SliceStable).
func sortParcels(parcels []model.Parcel, h model.Heuristic) []model.Parcel {
	sorted := make([]model.Parcel, len(parcels))
	copy(sorted, parcels)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ac, bc := a.Constrained(), b.Constrained()
		if ac != bc {
			return ac // constrained parcels sort first
		}
		if ac && a.DeliveryTime != b.DeliveryTime {
			return a.DeliveryTime < b.DeliveryTime
		}
		return h.Key(a) > h.Key(b)
	})
	return sorted
}
