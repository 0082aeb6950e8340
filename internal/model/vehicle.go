package model

import "fmt"

// VehicleShape is the identical rectangular template shared by every
// vehicle available to a solve: a box with positive length, width and
// height. All coordinates in this package are in the same integer unit
// as this shape.
type VehicleShape struct {
	L, W, H int
}

// NewVehicleShape validates and builds a VehicleShape.
func NewVehicleShape(l, w, h int) (VehicleShape, error) {
	if l <= 0 || w <= 0 || h <= 0 {
		return VehicleShape{}, fmt.Errorf("model: vehicle shape must have positive dimensions, got %dx%dx%d", l, w, h)
	}
	return VehicleShape{L: l, W: w, H: h}, nil
}

// Volume returns L*W*H.
func (s VehicleShape) Volume() int { return s.L * s.W * s.H }

// Placement is one parcel's position and orientation inside one vehicle.
// The occupied box is [X, X+LX) x [Y, Y+LY) x [Z, Z+LZ), and {LX, LY, LZ}
// as a multiset always equals the parcel's {Length, Width, Height}.
type Placement struct {
	VehicleIndex int
	ParcelIndex  int
	Box          Box
}

// Origin returns the placement's origin point.
func (p Placement) Origin() (x, y, z int) { return p.Box.X, p.Box.Y, p.Box.Z }

// OppositeCorner returns (x + lx, y + ly, z + lz), the corner a textual
// solution format would report alongside the origin.
func (p Placement) OppositeCorner() (x1, y1, z1 int) { return p.Box.Corner() }
