package model

// Zone is an x-interval [Min, Max] along a vehicle's length axis that a
// delivery-time group is restricted to.
type Zone struct {
	Min, Max int
}

// Contains reports whether the interval [x, x+lx] lies within the zone.
func (z Zone) Contains(x, lx int) bool {
	return x >= z.Min && x+lx <= z.Max
}

// ZoneMap maps a parcel's delivery time to the x-interval it is confined
// to. It is computed once per problem by the delivery-zone planner and is
// read-only thereafter.
type ZoneMap map[int]Zone

// Lookup returns the zone for the given delivery time, or (Zone{}, false)
// if no entry applies — callers then treat the parcel as x-unbounded.
func (m ZoneMap) Lookup(deliveryTime int) (Zone, bool) {
	z, ok := m[deliveryTime]
	return z, ok
}
