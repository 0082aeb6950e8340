package engine

import (
	"sort"

	"github.com/piwi3910/vanload/internal/model"
)

// PlanDeliveryZones computes the delivery-zone map for a set of parcels
// and a vehicle shape. When enabled is false it returns an empty map and
// every parcel is treated as x-unbounded by the solver. When there are no
// delivery-time-constrained parcels, the map holds at most the full-length
// entry for unconstrained parcels.
//
// Constrained groups (delivery time >= 0) are assigned intervals by one
// of two strategies chosen from the group count k and average group size
// a: the cumulative strategy (k > 20, or k > 10 and a < 3) gives earlier
// deliveries progressively larger reach toward the rear; otherwise the
// proportional strategy partitions the length axis back-to-front by
// volume share, latest delivery first. Parcels with delivery time -1, if
// present, map to the full length [0, L].
func PlanDeliveryZones(parcels []model.Parcel, shape model.VehicleShape, enabled bool) model.ZoneMap {
	zones := make(model.ZoneMap)
	if !enabled {
		return zones
	}

	groups := make(map[int][]model.Parcel)
	hasUnconstrained := false
	for _, p := range parcels {
		if p.DeliveryTime == model.UnconstrainedDelivery {
			hasUnconstrained = true
			continue
		}
		groups[p.DeliveryTime] = append(groups[p.DeliveryTime], p)
	}

	times := make([]int, 0, len(groups))
	for t := range groups {
		times = append(times, t)
	}
	sort.Ints(times)

	if len(times) == 0 {
		if hasUnconstrained {
			zones[model.UnconstrainedDelivery] = model.Zone{Min: 0, Max: shape.L}
		}
		return zones
	}

	k := len(times)
	totalItems := 0
	for _, t := range times {
		totalItems += len(groups[t])
	}
	avg := float64(totalItems) / float64(k)

	if k > 20 || (k > 10 && avg < 3) {
		planCumulative(zones, times, shape)
	} else {
		planProportional(zones, times, groups, shape)
	}

	if hasUnconstrained {
		zones[model.UnconstrainedDelivery] = model.Zone{Min: 0, Max: shape.L}
	}
	return zones
}

// planCumulative assigns x_min=0 to every group and an x_max that shrinks
// as delivery time gets later, so earlier deliveries reach farther toward
// the rear.
func planCumulative(zones model.ZoneMap, times []int, shape model.VehicleShape) {
	k := len(times)
	denom := k - 1
	if denom < 1 {
		denom = 1
	}
	for i, t := range times {
		relative := float64(i) / float64(denom)
		xMax := int(float64(shape.L) * (0.4 + 0.6*(1-relative)))
		zones[t] = model.Zone{Min: 0, Max: xMax}
	}
}

// planProportional partitions [0, L] back-to-front (cursor starts at 0,
// latest delivery first) by each group's volume share, with a minimum
// zone length of 3x the largest single dimension in the group.
func planProportional(zones model.ZoneMap, times []int, groups map[int][]model.Parcel, shape model.VehicleShape) {
	totalVolume := 0
	volumeByTime := make(map[int]int, len(times))
	for _, t := range times {
		v := 0
		for _, p := range groups[t] {
			v += p.Volume()
		}
		volumeByTime[t] = v
		totalVolume += v
	}

	cursor := 0
	for i := len(times) - 1; i >= 0; i-- {
		t := times[i]
		length := shape.L / len(times)
		if totalVolume > 0 {
			length = int((float64(volumeByTime[t]) / float64(totalVolume)) * float64(shape.L) * 0.85)
			minLength := 3 * maxDimension(groups[t])
			if length < minLength {
				length = minLength
			}
		}
		if length > shape.L-cursor {
			length = shape.L - cursor
		}
		xMax := cursor + length
		if xMax > shape.L {
			xMax = shape.L
		}
		zones[t] = model.Zone{Min: cursor, Max: xMax}
		cursor = xMax
	}
}

func maxDimension(parcels []model.Parcel) int {
	m := 0
	for _, p := range parcels {
		for _, d := range []int{p.Length, p.Width, p.Height} {
			if d > m {
				m = d
			}
		}
	}
	return m
}
