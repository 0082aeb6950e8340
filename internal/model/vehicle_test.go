package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicleShape_RejectsNonPositive(t *testing.T) {
	_, err := NewVehicleShape(10, 0, 10)
	require.Error(t, err)
}

func TestVehicleShape_Volume(t *testing.T) {
	shape, err := NewVehicleShape(10, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, 600, shape.Volume())
}

func TestPlacement_OriginAndOppositeCorner(t *testing.T) {
	p := Placement{
		VehicleIndex: 0,
		ParcelIndex:  2,
		Box:          Box{X: 1, Y: 2, Z: 3, LX: 4, LY: 5, LZ: 6},
	}
	x, y, z := p.Origin()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, 3, z)

	x1, y1, z1 := p.OppositeCorner()
	assert.Equal(t, 5, x1)
	assert.Equal(t, 7, y1)
	assert.Equal(t, 9, z1)
}
