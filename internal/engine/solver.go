package engine

import (
	"github.com/google/uuid"
	"github.com/piwi3910/vanload/internal/model"
)

const maxLocalSearchIterations = 10

// Solver orchestrates the full constructive + local-search pipeline for
// one vehicle shape. Its fields are read-only configuration; all working
// state (zone map, packers, unplaced list) is built fresh inside Solve,
// so a single *Solver is safe to reuse or discard, and two Solve calls
// never share mutable state.
type Solver struct {
	Shape   model.VehicleShape
	Options model.Options
	Logger  Logger
}

// NewSolver builds a Solver for the given vehicle shape and options.
func NewSolver(shape model.VehicleShape, opts model.Options) *Solver {
	return &Solver{Shape: shape, Options: opts}
}

// Solve is the package-level convenience entry point: a pure function
// from (shape, parcels, options) to a Result.
func Solve(shape model.VehicleShape, parcels []model.Parcel, opts model.Options) model.Result {
	return NewSolver(shape, opts).Solve(parcels)
}

// Solve runs the sort -> best-fit construction -> local-search pipeline
// and returns the resulting placements, unplaced parcels, and success
// flag.
func (s *Solver) Solve(parcels []model.Parcel) model.Result {
	logger := s.Logger
	if logger == nil {
		logger = discardLogger
	}
	var runTag string
	if s.Options.Verbose {
		runTag = uuid.New().String()[:8]
		logger.Printf("[solve %s] starting: %d parcels, heuristic=%s, zones=%v", runTag, len(parcels), s.Options.Heuristic, s.Options.ZonesEnabled)
	}

	zones := PlanDeliveryZones(parcels, s.Shape, s.Options.ZonesEnabled)
	sorted := sortParcels(parcels, s.Options.Heuristic)

	byIndex := make(map[int]model.Parcel, len(parcels))
	for _, p := range parcels {
		byIndex[p.Index] = p
	}

	var packers []*Packer
	var unplaced []model.Parcel

	for _, p := range sorted {
		xr := zoneRangeFor(zones, p)

		bestIdx := -1
		bestScore := -1.0
		for i, pk := range packers {
			if score, ok := pk.TryPlace(p, xr); ok && score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		placed := false
		if bestIdx >= 0 {
			placed = packers[bestIdx].CommitPlace(p, xr, bestIdx)
		}
		if !placed {
			fresh := NewPacker(s.Shape)
			if fresh.CommitPlace(p, xr, len(packers)) {
				packers = append(packers, fresh)
				placed = true
			}
		}
		if !placed {
			unplaced = append(unplaced, p)
			if s.Options.Verbose {
				logger.Printf("[solve %s] parcel %d has no feasible placement", runTag, p.Index)
			}
		}
	}

	if len(unplaced) == 0 {
		packers = closeVehicles(packers, byIndex, zones, maxLocalSearchIterations)
	}

	result := model.Result{
		Unplaced: unplaced,
		Success:  len(unplaced) == 0,
	}
	for _, pk := range packers {
		result.Placements = append(result.Placements, pk.Placements()...)
	}

	if s.Options.Verbose {
		logger.Printf("[solve %s] done: %d vehicles, %d placed, %d unplaced", runTag, len(packers), len(result.Placements), len(unplaced))
	}

	return result
}

// zoneRangeFor returns the x-range constraint for a parcel per the
// current delivery-zone map, or unbounded() if none applies.
func zoneRangeFor(zones model.ZoneMap, p model.Parcel) xRange {
	z, ok := zones.Lookup(p.DeliveryTime)
	if !ok {
		return unbounded()
	}
	return boundedRange(z)
}
