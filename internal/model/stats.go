package model

import "math"

// Stats summarizes a solve result.
type Stats struct {
	VehiclesUsed    int
	ParcelsPlaced   int
	ParcelsUnplaced int
	MeanUtilization float64 // in [0, 1], over used vehicles only
	OccupiedVolume  int
	AvailableVolume int
}

// MinimumVehiclesByVolume returns a naive lower bound on the number of
// vehicles any solution needs: the total parcel volume divided by a
// single vehicle's volume, rounded up. It ignores geometry entirely (two
// parcels that individually fit may still be unable to share a vehicle),
// so it is a lower bound, not a prediction — the same role
// SheetsNeededMin plays for stock-sheet purchasing in the 2D cut-list
// case this package generalizes from.
func MinimumVehiclesByVolume(parcels []Parcel, shape VehicleShape) int {
	if shape.Volume() <= 0 {
		return 0
	}
	var totalVolume int
	for _, p := range parcels {
		totalVolume += p.Volume()
	}
	return int(math.Ceil(float64(totalVolume) / float64(shape.Volume())))
}
