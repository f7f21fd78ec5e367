package umath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircles(t *testing.T) {
	t.Run("Circle", func(t *testing.T) {
		assert.InDelta(t, math.Pi, AreaOfCircle(1), 1e-12)
		assert.InDelta(t, 4*math.Pi, CircumferenceOfCircle(2), 1e-12)
	})

	t.Run("Semicircle area", func(t *testing.T) {
		assert.InDelta(t, 25.1327, AreaOfSemicircle(4), 1e-4)
	})

	t.Run("Semicircle perimeter", func(t *testing.T) {
		assert.InDelta(t, 20.5664, PerimeterOfSemicircle(4), 1e-4)
	})
}

func TestQuadrilaterals(t *testing.T) {
	assert.Equal(t, 12.0, AreaOfRectangle(3, 4))
	assert.Equal(t, 14.0, PerimeterOfRectangle(3, 4))
	assert.Equal(t, 18.0, AreaOfParallelogram(6, 3))
	assert.Equal(t, 22.0, PerimeterOfParallelogram(6, 5))
	assert.Equal(t, 24.0, AreaOfTrapezium(5, 7, 4))
	assert.Equal(t, 26.0, PerimeterOfTrapezium(5, 7, 6, 8))

	// lengths are not validated
	assert.Equal(t, -12.0, AreaOfRectangle(-3, 4))
}

func TestRegularPolygons(t *testing.T) {
	t.Run("Hexagon angles", func(t *testing.T) {
		interior, err := InteriorAngleOfPolygon(6)
		require.NoError(t, err)
		assert.Equal(t, 120.0, interior)

		exterior, err := ExteriorAngleOfPolygon(6)
		require.NoError(t, err)
		assert.Equal(t, 60.0, exterior)
	})

	t.Run("Square area and perimeter", func(t *testing.T) {
		area, err := AreaOfRegularPolygon(4, 2)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, area, 1e-9)

		perimeter, err := PerimeterOfRegularPolygon(4, 2)
		require.NoError(t, err)
		assert.Equal(t, 8.0, perimeter)
	})

	t.Run("Equilateral triangle area", func(t *testing.T) {
		area, err := AreaOfRegularPolygon(3, 1)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(3)/4, area, 1e-12)
	})

	t.Run("Interior and exterior angles are supplementary", func(t *testing.T) {
		for sides := 3; sides <= 64; sides++ {
			interior, err := InteriorAngleOfPolygon(sides)
			require.NoError(t, err)
			exterior, err := ExteriorAngleOfPolygon(sides)
			require.NoError(t, err)
			assert.InDelta(t, 180.0, interior+exterior, 1e-9, "sides=%d", sides)
		}
	})

	t.Run("Too few sides", func(t *testing.T) {
		for _, sides := range []int{2, 1, 0, -5} {
			_, err := InteriorAngleOfPolygon(sides)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			_, err = ExteriorAngleOfPolygon(sides)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			_, err = AreaOfRegularPolygon(sides, 1)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			_, err = PerimeterOfRegularPolygon(sides, 1)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		}

		_, err := InteriorAngleOfPolygon(2)
		assert.EqualError(t, err, "invalid argument: a polygon must have at least 3 sides")
	})
}

func TestDegreeTrig(t *testing.T) {
	assert.InDelta(t, 0.5, SinDegrees(30), 1e-12)
	assert.InDelta(t, 0.5, CosDegrees(60), 1e-12)
	assert.InDelta(t, 1.0, TanDegrees(45), 1e-12)
	assert.InDelta(t, 0.0, SinDegrees(180), 1e-12)
	assert.InDelta(t, -1.0, CosDegrees(180), 1e-12)
	assert.Greater(t, math.Abs(TanDegrees(90)), 1e15)
}
