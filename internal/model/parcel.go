package model

import "fmt"

// UnconstrainedDelivery is the delivery-time sentinel meaning "no
// delivery-order constraint applies to this parcel."
const UnconstrainedDelivery = -1

// Parcel is a rectangular item to be loaded, identified by its zero-based
// position in the input order. Its set of distinct orientations is
// computed once at construction and never changes afterward.
type Parcel struct {
	Index        int
	Length       int
	Width        int
	Height       int
	DeliveryTime int // UnconstrainedDelivery (-1) if unconstrained

	orientations []Dims
}

// Dims is a (lx, ly, lz) triple: one orientation of a parcel, or the
// effective dimensions of a placement.
type Dims struct {
	LX, LY, LZ int
}

// Volume returns lx*ly*lz.
func (d Dims) Volume() int { return d.LX * d.LY * d.LZ }

// NewParcel builds a Parcel and precomputes its distinct orientations.
// Dimensions must be positive; index and delivery time are taken as given.
func NewParcel(index, length, width, height, deliveryTime int) (Parcel, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return Parcel{}, fmt.Errorf("model: parcel %d has non-positive dimension %dx%dx%d", index, length, width, height)
	}
	p := Parcel{
		Index:        index,
		Length:       length,
		Width:        width,
		Height:       height,
		DeliveryTime: deliveryTime,
	}
	p.orientations = distinctOrientations(length, width, height)
	return p, nil
}

// Volume returns the parcel's volume, invariant under orientation.
func (p Parcel) Volume() int { return p.Length * p.Width * p.Height }

// Constrained reports whether this parcel carries a delivery-order constraint.
func (p Parcel) Constrained() bool { return p.DeliveryTime != UnconstrainedDelivery }

// Orientations returns the parcel's distinct orientations in a fixed,
// deterministic enumeration order: the six axis permutations of
// (length, width, height), with duplicates (from repeated dimension
// values) collapsed to their first occurrence. Cubes therefore yield
// one orientation, square-faced boxes yield three.
func (p Parcel) Orientations() []Dims {
	return p.orientations
}

// distinctOrientations enumerates the six permutations of (l, w, h) in a
// fixed order and removes duplicates, keeping first occurrence. The fixed
// order (rather than a map/set) is what makes placement search
// deterministic given otherwise-equal candidates.
func distinctOrientations(l, w, h int) []Dims {
	candidates := [6]Dims{
		{l, w, h},
		{l, h, w},
		{w, l, h},
		{w, h, l},
		{h, l, w},
		{h, w, l},
	}
	out := make([]Dims, 0, 6)
	seen := make(map[Dims]bool, 6)
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// FittingOrientations returns the subset of Orientations() that fit within
// the given vehicle shape, in the same enumeration order. An empty result
// means the parcel cannot be placed in any vehicle of this shape at all,
// regardless of how it is packed.
func (p Parcel) FittingOrientations(shape VehicleShape) []Dims {
	var fitting []Dims
	for _, o := range p.orientations {
		if o.LX <= shape.L && o.LY <= shape.W && o.LZ <= shape.H {
			fitting = append(fitting, o)
		}
	}
	return fitting
}
