package stacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationClosure(t *testing.T) {
	for id := range ShapeID(ShapeCount) {
		t.Run(id.String(), func(t *testing.T) {
			rot, ok := RotationsOf(id)
			require.True(t, ok)
			require.Len(t, rot[0], 4, "every canonical shape has four cells")

			ox, oy, hasOrigin := Origin(id)
			if !hasOrigin {
				for r := 1; r < 4; r++ {
					assert.Equal(t, rot[0], rot[r])
				}
				return
			}

			for r := 1; r < 4; r++ {
				assert.Equal(t, Rotate(rot[r-1], ox, oy), rot[r], "state %d", r)
			}
			assert.Equal(t, rot[0], Rotate(rot[3], ox, oy))
		})
	}
}

func TestRotationsOfUnknown(t *testing.T) {
	rot, ok := RotationsOf(ShapeID(42))
	assert.False(t, ok)
	assert.Equal(t, Rotations{}, rot)

	_, _, ok = Origin(ShapeID(-1))
	assert.False(t, ok)
	assert.Equal(t, "?", ShapeID(9).String())
}

func TestOriginlessShapeIsInvariant(t *testing.T) {
	_, _, ok := Origin(ShapeO)
	require.False(t, ok)

	rot, _ := RotationsOf(ShapeO)
	want := []Cell{
		{X: 1, Y: 0, Kind: CellFilled},
		{X: 2, Y: 0, Kind: CellFilled},
		{X: 1, Y: 1, Kind: CellFilled},
		{X: 2, Y: 1, Kind: CellFilled},
	}
	for r := range 4 {
		assert.Equal(t, want, rot[r])
	}
}

func TestRotationStates(t *testing.T) {
	t.Run("T turns clockwise on screen", func(t *testing.T) {
		rot, _ := RotationsOf(ShapeT)
		assert.Equal(t, []Cell{
			{X: 0, Y: 1, Kind: CellFilled},
			{X: 1, Y: 1, Kind: CellOrigin},
			{X: 1, Y: 0, Kind: CellFilled},
			{X: 2, Y: 1, Kind: CellFilled},
		}, rot[1])
	})

	t.Run("I pivots on its third cell", func(t *testing.T) {
		ox, oy, ok := Origin(ShapeI)
		require.True(t, ok)
		assert.Equal(t, 2, ox)
		assert.Equal(t, 1, oy)

		rot, _ := RotationsOf(ShapeI)
		for _, c := range rot[1] {
			assert.Equal(t, 2, c.X, "vertical I stays in the pivot column")
		}
	})
}
