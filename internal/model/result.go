package model

// Result is what a solve produces: every accepted placement, the parcels
// that could not be placed at all, and an overall success flag. Success
// holds iff Unplaced is empty.
type Result struct {
	Placements []Placement
	Unplaced   []Parcel
	Success    bool
}

// VehicleCount returns one more than the highest vehicle index referenced
// by the result's placements (0 when there are none), treating vehicle
// indices as dense from zero.
func (r Result) VehicleCount() int {
	max := -1
	for _, p := range r.Placements {
		if p.VehicleIndex > max {
			max = p.VehicleIndex
		}
	}
	return max + 1
}

// Stats computes the solve's summary statistics: vehicles used, parcels
// placed, parcels unplaced, mean utilization over used vehicles, total
// occupied volume, and total available volume.
func (r Result) Stats(shape VehicleShape) Stats {
	n := r.VehicleCount()
	occupiedByVehicle := make([]int, n)
	for _, p := range r.Placements {
		occupiedByVehicle[p.VehicleIndex] += p.Box.LX * p.Box.LY * p.Box.LZ
	}

	var totalOccupied int
	var utilizationSum float64
	for _, occ := range occupiedByVehicle {
		totalOccupied += occ
		if shape.Volume() > 0 {
			utilizationSum += float64(occ) / float64(shape.Volume())
		}
	}

	meanUtilization := 0.0
	if n > 0 {
		meanUtilization = utilizationSum / float64(n)
	}

	return Stats{
		VehiclesUsed:      n,
		ParcelsPlaced:     len(r.Placements),
		ParcelsUnplaced:   len(r.Unplaced),
		MeanUtilization:   meanUtilization,
		OccupiedVolume:    totalOccupied,
		AvailableVolume:   n * shape.Volume(),
	}
}
