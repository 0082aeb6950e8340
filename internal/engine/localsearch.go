package engine

import "github.com/piwi3910/vanload/internal/model"

// closeVehicles runs the vehicle-closing local search: up to
// maxIterations times, find the least-utilized packer and try to empty
// it into the others, deleting it and renumbering on success.
//
// Scoring for every parcel of the target packer is done against the
// other packers' state as of the start of the iteration, not a running
// simulation: no candidate packer is mutated until every one of the
// target's parcels has found a host. Only then does the apply phase
// actually commit, packer by packer, via a live commit-place that
// re-derives the position against whatever the packer's state is at
// that moment.
//
// The reference implementation this was modeled on applies those
// commits without checking whether a later one fails, which can
// silently lose a parcel if an earlier commit in the same round
// consumes space a later one's score depended on. This implementation
// takes the safer alternative: if any commit in the apply phase fails,
// every commit already applied this iteration is rolled back, the
// target packer is left untouched, and the local search stops rather
// than risk losing or duplicating a placement.
func closeVehicles(packers []*Packer, byIndex map[int]model.Parcel, zones model.ZoneMap, maxIterations int) []*Packer {
	for iter := 0; iter < maxIterations; iter++ {
		if len(packers) <= 1 {
			break
		}

		targetIdx := leastUtilizedIndex(packers)
		target := packers[targetIdx]
		targetParcels := parcelIndicesOf(target)
		if len(targetParcels) == 0 {
			break
		}

		others, otherVehicleIdx := otherPackers(packers, targetIdx)

		assignment, ok := scoreRelocation(targetParcels, byIndex, zones, others)
		if !ok {
			break
		}

		if !applyRelocation(targetParcels, byIndex, zones, others, otherVehicleIdx, assignment) {
			break
		}

		for _, pidx := range targetParcels {
			target.Remove(pidx)
		}
		packers = removeVehicle(packers, targetIdx)
	}
	return packers
}

// leastUtilizedIndex returns the index of the packer with the lowest
// utilization.
func leastUtilizedIndex(packers []*Packer) int {
	best := 0
	bestUtil := packers[0].Utilization()
	for i, pk := range packers[1:] {
		if u := pk.Utilization(); u < bestUtil {
			bestUtil = u
			best = i + 1
		}
	}
	return best
}

func parcelIndicesOf(pk *Packer) []int {
	placements := pk.Placements()
	indices := make([]int, len(placements))
	for i, pl := range placements {
		indices[i] = pl.ParcelIndex
	}
	return indices
}

func otherPackers(packers []*Packer, excludeIdx int) ([]*Packer, []int) {
	others := make([]*Packer, 0, len(packers)-1)
	vehicleIdx := make([]int, 0, len(packers)-1)
	for i, pk := range packers {
		if i == excludeIdx {
			continue
		}
		others = append(others, pk)
		vehicleIdx = append(vehicleIdx, i)
	}
	return others, vehicleIdx
}

// scoreRelocation finds, for each of the target's parcels, the
// best-scoring candidate among others (non-mutating). Returns false if
// any parcel finds no candidate at all.
func scoreRelocation(targetParcels []int, byIndex map[int]model.Parcel, zones model.ZoneMap, others []*Packer) ([]int, bool) {
	assignment := make([]int, len(targetParcels))
	for i, pidx := range targetParcels {
		p := byIndex[pidx]
		xr := zoneRangeFor(zones, p)

		best := -1
		bestScore := -1.0
		for j, o := range others {
			if score, ok := o.TryPlace(p, xr); ok && score > bestScore {
				bestScore = score
				best = j
			}
		}
		if best == -1 {
			return nil, false
		}
		assignment[i] = best
	}
	return assignment, true
}

// applyRelocation commits each target parcel onto its assigned
// candidate packer with a live, re-derived commit-place. If any commit
// fails, everything committed so far this call is rolled back and
// false is returned.
func applyRelocation(targetParcels []int, byIndex map[int]model.Parcel, zones model.ZoneMap, others []*Packer, otherVehicleIdx []int, assignment []int) bool {
	type committed struct {
		pk        *Packer
		parcelIdx int
	}
	var done []committed

	for i, pidx := range targetParcels {
		p := byIndex[pidx]
		xr := zoneRangeFor(zones, p)
		dest := others[assignment[i]]

		if !dest.CommitPlace(p, xr, otherVehicleIdx[assignment[i]]) {
			for _, c := range done {
				c.pk.Remove(c.parcelIdx)
			}
			return false
		}
		done = append(done, committed{pk: dest, parcelIdx: pidx})
	}
	return true
}

// removeVehicle drops the packer at idx and renumbers every remaining
// packer's placements to match its new position in the list.
func removeVehicle(packers []*Packer, idx int) []*Packer {
	packers = append(packers[:idx], packers[idx+1:]...)
	for i, pk := range packers {
		pk.SetVehicleIndex(i)
	}
	return packers
}
