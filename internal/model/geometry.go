package model

// Box is an axis-aligned box with an integer origin and integer extents.
// It is the common shape shared by a vehicle's interior, a parcel's
// footprint once oriented, and a placement's occupied space.
type Box struct {
	X, Y, Z    int
	LX, LY, LZ int
}

// intervalsOverlap reports whether [a, b) and [c, d) overlap.
func intervalsOverlap(a, b, c, d int) bool {
	return a < d && c < b
}

// Overlaps reports whether two boxes occupy common space on all three axes.
// Boxes that merely touch (share a face) do not overlap.
func (b Box) Overlaps(other Box) bool {
	return intervalsOverlap(b.X, b.X+b.LX, other.X, other.X+other.LX) &&
		intervalsOverlap(b.Y, b.Y+b.LY, other.Y, other.Y+other.LY) &&
		intervalsOverlap(b.Z, b.Z+b.LZ, other.Z, other.Z+other.LZ)
}

// ContainedIn reports whether b lies entirely within [0, L) x [0, W) x [0, H),
// i.e. inside a vehicle interior of the given shape.
func (b Box) ContainedIn(shape VehicleShape) bool {
	return b.X >= 0 && b.Y >= 0 && b.Z >= 0 &&
		b.X+b.LX <= shape.L && b.Y+b.LY <= shape.W && b.Z+b.LZ <= shape.H
}

// Corner returns the opposite corner of the box from its origin.
func (b Box) Corner() (x1, y1, z1 int) {
	return b.X + b.LX, b.Y + b.LY, b.Z + b.LZ
}
