// Package engine implements the constructive placement heuristic: the
// vehicle packer, the delivery-zone planner, and the solver that
// orchestrates sorting, best-fit placement, and vehicle-closing local
// search over a growing list of packers.
package engine

import (
	"sort"

	"github.com/piwi3910/vanload/internal/model"
)

// xRange is an optional x-axis constraint on a placement search, backed
// by a delivery zone when one applies. An unbounded xRange imposes no
// constraint at all.
type xRange struct {
	zone    model.Zone
	bounded bool
}

func unbounded() xRange { return xRange{} }

func boundedRange(z model.Zone) xRange { return xRange{zone: z, bounded: true} }

func (r xRange) loLimit() int {
	if !r.bounded {
		return 0
	}
	return r.zone.Min
}

func (r xRange) hiLimit(shapeL int) int {
	if !r.bounded {
		return shapeL
	}
	return r.zone.Max
}

// fits reports whether a box of length lx starting at x honors the
// range, delegating to the zone's own containment check when bounded.
func (r xRange) fits(x, lx int) bool {
	if !r.bounded {
		return true
	}
	return r.zone.Contains(x, lx)
}

// Packer owns every placement inside a single vehicle. It exposes
// non-mutating try-fit and mutating commit-fit placement primitives plus
// removal.
type Packer struct {
	Shape      model.VehicleShape
	placements []model.Placement
	occupied   int
}

// NewPacker creates an empty packer for a vehicle of the given shape.
func NewPacker(shape model.VehicleShape) *Packer {
	return &Packer{Shape: shape}
}

// Placements returns the packer's current placements. The slice is owned
// by the packer; callers must not mutate it.
func (pk *Packer) Placements() []model.Placement { return pk.placements }

// OccupiedVolume returns the cached sum of occupied parcel volumes.
func (pk *Packer) OccupiedVolume() int { return pk.occupied }

// Utilization returns occupied volume divided by vehicle volume, in [0, 1].
func (pk *Packer) Utilization() float64 {
	if pk.Shape.Volume() == 0 {
		return 0
	}
	return float64(pk.occupied) / float64(pk.Shape.Volume())
}

// CanFit reports whether the parcel has at least one orientation that
// fits the vehicle shape at all (ignoring current occupancy). Pure.
func (pk *Packer) CanFit(p model.Parcel) bool {
	return len(p.FittingOrientations(pk.Shape)) > 0
}

// TryPlace searches for a placement of p honoring the optional x-range,
// without mutating packer state. It returns the utilization the packer
// would have after committing that placement, or (0, false) if no valid
// placement exists.
func (pk *Packer) TryPlace(p model.Parcel, xr xRange) (float64, bool) {
	box, ok := pk.findPlacement(p, xr)
	if !ok {
		return 0, false
	}
	newOccupied := pk.occupied + box.LX*box.LY*box.LZ
	if pk.Shape.Volume() == 0 {
		return 0, true
	}
	return float64(newOccupied) / float64(pk.Shape.Volume()), true
}

// CommitPlace repeats the search and, on success, appends the placement
// and updates occupied volume. vehicleIndex is stamped onto the
// resulting model.Placement.
func (pk *Packer) CommitPlace(p model.Parcel, xr xRange, vehicleIndex int) bool {
	box, ok := pk.findPlacement(p, xr)
	if !ok {
		return false
	}
	pk.placements = append(pk.placements, model.Placement{
		VehicleIndex: vehicleIndex,
		ParcelIndex:  p.Index,
		Box:          box,
	})
	pk.occupied += box.LX * box.LY * box.LZ
	return true
}

// SetVehicleIndex stamps a new vehicle index onto every placement the
// packer holds, used when a packer's position in the solver's packer
// list shifts after another packer is closed.
func (pk *Packer) SetVehicleIndex(vehicleIndex int) {
	for i := range pk.placements {
		pk.placements[i].VehicleIndex = vehicleIndex
	}
}

// Remove deletes the placement carrying the given parcel index, if
// present, and updates occupied volume. Returns true iff a placement was
// removed.
func (pk *Packer) Remove(parcelIndex int) bool {
	for i, pl := range pk.placements {
		if pl.ParcelIndex == parcelIndex {
			pk.occupied -= pl.Box.LX * pl.Box.LY * pl.Box.LZ
			pk.placements = append(pk.placements[:i], pk.placements[i+1:]...)
			return true
		}
	}
	return false
}

// anchor is a candidate origin point for a new placement.
type anchor struct {
	X, Y, Z int
}

// candidatePositions returns the set of anchor points to try, seeded with
// the origin and extended with the three "next corner" points of every
// existing placement, deduplicated.
func (pk *Packer) candidatePositions() []anchor {
	seen := map[anchor]bool{{}: true}
	anchors := []anchor{{}}

	for _, pl := range pk.placements {
		x1, y1, z1 := pl.Box.Corner()
		candidates := [3]anchor{
			{X: x1, Y: pl.Box.Y, Z: pl.Box.Z},
			{X: pl.Box.X, Y: y1, Z: pl.Box.Z},
			{X: pl.Box.X, Y: pl.Box.Y, Z: z1},
		}
		for _, c := range candidates {
			if !seen[c] {
				seen[c] = true
				anchors = append(anchors, c)
			}
		}
	}
	return anchors
}

// findPlacement enumerates fitting orientations, generates and filters
// anchor points, sorts anchors bottom-left-back, and accepts the first
// (orientation, anchor) pair that fits, honors the x-range, and does not
// overlap any existing placement.
func (pk *Packer) findPlacement(p model.Parcel, xr xRange) (model.Box, bool) {
	orientations := p.FittingOrientations(pk.Shape)
	if len(orientations) == 0 {
		return model.Box{}, false
	}

	lo := xr.loLimit()
	hi := xr.hiLimit(pk.Shape.L)

	var filtered []anchor
	for _, a := range pk.candidatePositions() {
		if a.X >= pk.Shape.L || a.Y >= pk.Shape.W || a.Z >= pk.Shape.H {
			continue
		}
		if a.X < lo || a.X >= hi {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.Slice(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	for _, o := range orientations {
		for _, a := range filtered {
			if !xr.fits(a.X, o.LX) {
				continue
			}
			box := model.Box{X: a.X, Y: a.Y, Z: a.Z, LX: o.LX, LY: o.LY, LZ: o.LZ}
			if !box.ContainedIn(pk.Shape) {
				continue
			}
			if pk.overlapsAny(box) {
				continue
			}
			return box, true
		}
	}
	return model.Box{}, false
}

func (pk *Packer) overlapsAny(box model.Box) bool {
	for _, pl := range pk.placements {
		if box.Overlaps(pl.Box) {
			return true
		}
	}
	return false
}
