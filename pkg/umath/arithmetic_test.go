package umath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, 5.0, Add(2, 3))
		assert.Equal(t, -1.5, Add(0.5, -2))
	})

	t.Run("Subtract", func(t *testing.T) {
		assert.Equal(t, 7.0, Subtract(10, 3))
	})

	t.Run("Multiply", func(t *testing.T) {
		assert.Equal(t, 24.0, Multiply(4, 6))
	})

	t.Run("Divide", func(t *testing.T) {
		result, err := Divide(10, 4)
		require.NoError(t, err)
		assert.Equal(t, 2.5, result)
	})

	t.Run("Divide by zero", func(t *testing.T) {
		_, err := Divide(5, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDivisionByZero))
		assert.False(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, "division by zero", err.Error())
	})

	t.Run("Divide then multiply round trips", func(t *testing.T) {
		pairs := [][2]float64{{1, 3}, {7.3, -2.1}, {-1e6, 1e-3}, {0, 42}}
		for _, p := range pairs {
			q, err := Divide(p[0], p[1])
			require.NoError(t, err)
			assert.InDelta(t, p[0], q*p[1], 1e-9*math.Max(1, math.Abs(p[0])))
		}
	})

	t.Run("Power", func(t *testing.T) {
		assert.Equal(t, 8.0, Power(2, 3))
		assert.Equal(t, 0.25, Power(2, -2))
		assert.True(t, math.IsNaN(Power(-8, 1.0/3)))
	})
}

func TestLogarithm(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		base    float64
		want    float64
		wantErr bool
	}{
		{name: "base 2", value: 8, base: 2, want: 3},
		{name: "base 10", value: 1000, base: 10, want: 3},
		{name: "fractional result", value: 2, base: 4, want: 0.5},
		{name: "zero value", value: 0, base: 2, wantErr: true},
		{name: "negative value", value: -4, base: 2, wantErr: true},
		{name: "base one", value: 8, base: 1, wantErr: true},
		{name: "base below one", value: 8, base: 0.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Logarithm(tt.value, tt.base)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestQuadraticRoots(t *testing.T) {
	t.Run("Two real roots", func(t *testing.T) {
		r1, err := QuadraticRoot1(1, -3, 2)
		require.NoError(t, err)
		r2, err := QuadraticRoot2(1, -3, 2)
		require.NoError(t, err)

		assert.Equal(t, 2.0, r1)
		assert.Equal(t, 1.0, r2)
	})

	t.Run("Repeated root", func(t *testing.T) {
		r1, err := QuadraticRoot1(1, 2, 1)
		require.NoError(t, err)
		r2, err := QuadraticRoot2(1, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, r1, r2)
		assert.Equal(t, -1.0, r1)
	})

	t.Run("No real roots", func(t *testing.T) {
		_, err := QuadraticRoot1(1, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = QuadraticRoot2(1, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "invalid argument: no real roots", err.Error())
	})

	t.Run("Linear equation rejected", func(t *testing.T) {
		_, err := QuadraticRoot1(0, 2, 1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = QuadraticRoot2(0, 2, 1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
