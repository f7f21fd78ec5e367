package math

import (
	"context"
	gomath "math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/umath/internal/providers/math/advanced"
	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/testutil"
	"github.com/GriffinCanCode/umath/internal/types"
)

func TestDefinition(t *testing.T) {
	provider := NewProvider(advanced.DefaultOptions())
	def := provider.Definition()

	assert.Equal(t, ServiceID, def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)
	assert.NotEmpty(t, def.Capabilities)

	t.Run("every tool routes", func(t *testing.T) {
		ctx := context.Background()
		seen := map[string]bool{}
		for _, tool := range def.Tools {
			assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
			seen[tool.ID] = true

			result, err := provider.Execute(ctx, tool.ID, map[string]interface{}{}, nil)
			require.NoError(t, err)
			require.NotNil(t, result)
			require.NotNil(t, result.Error, tool.ID)
			assert.NotContains(t, *result.Error, "unknown tool", tool.ID)
		}
		assert.Len(t, seen, 36)
	})
}

func TestMathProvider(t *testing.T) {
	provider := NewProvider(advanced.DefaultOptions())
	ctx := context.Background()

	exec := func(t *testing.T, toolID string, params map[string]interface{}) *types.Result {
		t.Helper()
		result, err := provider.Execute(ctx, toolID, params, nil)
		require.NoError(t, err)
		return result
	}

	t.Run("Arithmetic Operations", func(t *testing.T) {
		t.Run("Add", func(t *testing.T) {
			result := exec(t, "umath.add", map[string]interface{}{"a": 2.0, "b": 3.0})
			testutil.AssertDataField(t, result, "result", 5.0)
		})

		t.Run("Add with integers", func(t *testing.T) {
			result := exec(t, "umath.add", map[string]interface{}{"a": 2, "b": 3})
			testutil.AssertDataField(t, result, "result", 5.0)
		})

		t.Run("Subtract", func(t *testing.T) {
			result := exec(t, "umath.subtract", map[string]interface{}{"a": 10.0, "b": 3.0})
			testutil.AssertDataField(t, result, "result", 7.0)
		})

		t.Run("Multiply", func(t *testing.T) {
			result := exec(t, "umath.multiply", map[string]interface{}{"a": 4.0, "b": 2.5})
			testutil.AssertDataField(t, result, "result", 10.0)
		})

		t.Run("Divide", func(t *testing.T) {
			result := exec(t, "umath.divide", map[string]interface{}{"a": 10.0, "b": 4.0})
			testutil.AssertDataField(t, result, "result", 2.5)
		})

		t.Run("Divide by zero", func(t *testing.T) {
			result := exec(t, "umath.divide", map[string]interface{}{"a": 5.0, "b": 0.0})
			testutil.AssertErrorKind(t, result, common.KindDivisionByZero)
			assert.Equal(t, "division by zero", *result.Error)
		})

		t.Run("Missing parameter", func(t *testing.T) {
			result := exec(t, "umath.divide", map[string]interface{}{"a": 5.0})
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
			assert.Contains(t, *result.Error, "b parameter required")
		})

		t.Run("Non numeric parameter", func(t *testing.T) {
			result := exec(t, "umath.add", map[string]interface{}{"a": "two", "b": 3.0})
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
		})

		t.Run("Power", func(t *testing.T) {
			result := exec(t, "umath.power", map[string]interface{}{"base": 2.0, "exponent": 10.0})
			testutil.AssertDataField(t, result, "result", 1024.0)
		})

		t.Run("Power NaN encoded", func(t *testing.T) {
			result := exec(t, "umath.power", map[string]interface{}{"base": -8.0, "exponent": 1.0 / 3})
			testutil.AssertDataField(t, result, "result", "NaN")
		})

		t.Run("Logarithm", func(t *testing.T) {
			result := exec(t, "umath.logarithm", map[string]interface{}{"value": 8.0, "base": 2.0})
			testutil.AssertResultInDelta(t, result, 3.0, 1e-12)
		})

		t.Run("Logarithm invalid base", func(t *testing.T) {
			result := exec(t, "umath.logarithm", map[string]interface{}{"value": 8.0, "base": 0.5})
			testutil.AssertErrorKind(t, result, common.KindInvalidArgument)
		})

		t.Run("Quadratic roots", func(t *testing.T) {
			params := map[string]interface{}{"a": 1.0, "b": -3.0, "c": 2.0}
			testutil.AssertDataField(t, exec(t, "umath.quadraticRoot1", params), "result", 2.0)
			testutil.AssertDataField(t, exec(t, "umath.quadraticRoot2", params), "result", 1.0)
		})

		t.Run("Quadratic no real roots", func(t *testing.T) {
			result := exec(t, "umath.quadraticRoot1", map[string]interface{}{"a": 1.0, "b": 0.0, "c": 1.0})
			testutil.AssertErrorKind(t, result, common.KindInvalidArgument)
		})
	})

	t.Run("Trig Operations", func(t *testing.T) {
		testutil.AssertResultInDelta(t, exec(t, "umath.sinDegrees", map[string]interface{}{"angle": 30.0}), 0.5, 1e-12)
		testutil.AssertResultInDelta(t, exec(t, "umath.cosDegrees", map[string]interface{}{"angle": 60.0}), 0.5, 1e-12)
		testutil.AssertResultInDelta(t, exec(t, "umath.tanDegrees", map[string]interface{}{"angle": 45.0}), 1.0, 1e-12)
	})

	t.Run("Geometry Operations", func(t *testing.T) {
		tests := []struct {
			name   string
			tool   string
			params map[string]interface{}
			want   float64
		}{
			{"semicircle area", "umath.areaOfSemicircle", map[string]interface{}{"radius": 4.0}, 25.1327},
			{"semicircle perimeter", "umath.perimeterOfSemicircle", map[string]interface{}{"radius": 4.0}, 20.5664},
			{"circle area", "umath.areaOfCircle", map[string]interface{}{"radius": 1.0}, gomath.Pi},
			{"circumference", "umath.circumferenceOfCircle", map[string]interface{}{"radius": 1.0}, 2 * gomath.Pi},
			{"rectangle area", "umath.areaOfRectangle", map[string]interface{}{"length": 3.0, "width": 4.0}, 12},
			{"rectangle perimeter", "umath.perimeterOfRectangle", map[string]interface{}{"length": 3.0, "width": 4.0}, 14},
			{"parallelogram area", "umath.areaOfParallelogram", map[string]interface{}{"base": 6.0, "height": 3.0}, 18},
			{"parallelogram perimeter", "umath.perimeterOfParallelogram", map[string]interface{}{"base": 6.0, "sideLength": 3.0}, 18},
			{"trapezium area", "umath.areaOfTrapezium", map[string]interface{}{"base1": 5.0, "base2": 7.0, "height": 4.0}, 24},
			{"trapezium perimeter", "umath.perimeterOfTrapezium", map[string]interface{}{"side1": 5.0, "side2": 7.0, "base1": 6.0, "base2": 8.0}, 26},
			{"square area", "umath.areaOfRegularPolygon", map[string]interface{}{"sides": 4, "sideLength": 2.0}, 4},
			{"hexagon perimeter", "umath.perimeterOfRegularPolygon", map[string]interface{}{"sides": 6.0, "sideLength": 2.0}, 12},
			{"hexagon interior", "umath.interiorAngleOfPolygon", map[string]interface{}{"sides": 6}, 120},
			{"hexagon exterior", "umath.exteriorAngleOfPolygon", map[string]interface{}{"sides": 6}, 60},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				testutil.AssertResultInDelta(t, exec(t, tt.tool, tt.params), tt.want, 1e-4)
			})
		}

		t.Run("polygon with two sides", func(t *testing.T) {
			result := exec(t, "umath.interiorAngleOfPolygon", map[string]interface{}{"sides": 2})
			testutil.AssertErrorKind(t, result, common.KindInvalidArgument)
			assert.Contains(t, *result.Error, "at least 3 sides")
		})

		t.Run("fractional sides", func(t *testing.T) {
			result := exec(t, "umath.exteriorAngleOfPolygon", map[string]interface{}{"sides": 4.5})
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
		})
	})

	t.Run("Stats Operations", func(t *testing.T) {
		values := []interface{}{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}

		testutil.AssertDataField(t, exec(t, "umath.mean", map[string]interface{}{"values": values}), "result", 5.0)
		testutil.AssertDataField(t, exec(t, "umath.variance", map[string]interface{}{"values": values}), "result", 4.0)
		testutil.AssertDataField(t, exec(t, "umath.standardDeviation", map[string]interface{}{"values": values}), "result", 2.0)
		testutil.AssertDataField(t, exec(t, "umath.median", map[string]interface{}{"values": values}), "result", 4.5)
		testutil.AssertDataField(t, exec(t, "umath.mode", map[string]interface{}{"values": values}), "result", 4.0)

		t.Run("typed slice", func(t *testing.T) {
			result := exec(t, "umath.median", map[string]interface{}{"values": []float64{3, 1, 2}})
			testutil.AssertDataField(t, result, "result", 2.0)
		})

		t.Run("empty values", func(t *testing.T) {
			result := exec(t, "umath.mean", map[string]interface{}{"values": []interface{}{}})
			testutil.AssertErrorKind(t, result, common.KindInvalidArgument)
		})

		t.Run("missing values", func(t *testing.T) {
			result := exec(t, "umath.mode", map[string]interface{}{})
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
		})
	})

	t.Run("Combinatorics Operations", func(t *testing.T) {
		testutil.AssertDataField(t, exec(t, "umath.combination", map[string]interface{}{"n": 5, "k": 2}), "result", 10.0)
		testutil.AssertDataField(t, exec(t, "umath.permutation", map[string]interface{}{"n": 5, "k": 2}), "result", 20.0)
		testutil.AssertDataField(t, exec(t, "umath.gcd", map[string]interface{}{"a": 12, "b": 18}), "result", 6)
		testutil.AssertDataField(t, exec(t, "umath.lcm", map[string]interface{}{"a": 4.0, "b": 6.0}), "result", 12)

		t.Run("k greater than n", func(t *testing.T) {
			result := exec(t, "umath.combination", map[string]interface{}{"n": 2, "k": 5})
			testutil.AssertErrorKind(t, result, common.KindInvalidArgument)
		})
	})

	t.Run("Calculus Operations", func(t *testing.T) {
		t.Run("Derivative", func(t *testing.T) {
			result := exec(t, "umath.derivative", map[string]interface{}{"fn": "x*x", "x": 3.0})
			testutil.AssertResultInDelta(t, result, 6.0, 1e-4)
		})

		t.Run("Derivative with step", func(t *testing.T) {
			result := exec(t, "umath.derivative", map[string]interface{}{"fn": "Math.sin(x)", "x": 0.0, "h": 1e-4})
			testutil.AssertResultInDelta(t, result, 1.0, 1e-6)
		})

		t.Run("Integrate", func(t *testing.T) {
			result := exec(t, "umath.integrate", map[string]interface{}{"fn": "2*x", "a": 0.0, "b": 1.0})
			testutil.AssertResultInDelta(t, result, 1.0, 1e-2)
		})

		t.Run("Integrate with steps", func(t *testing.T) {
			// left sum of f(x)=x over [0,1] with 4 steps: (0 + .25 + .5 + .75) / 4
			result := exec(t, "umath.integrate", map[string]interface{}{"fn": "x", "a": 0.0, "b": 1.0, "n": 4})
			testutil.AssertResultInDelta(t, result, 0.375, 1e-12)
		})

		t.Run("Integrate zero steps", func(t *testing.T) {
			result := exec(t, "umath.integrate", map[string]interface{}{"fn": "x", "a": 0.0, "b": 1.0, "n": 0})
			testutil.AssertErrorKind(t, result, common.KindInvalidArgument)
		})

		t.Run("Bad expression", func(t *testing.T) {
			result := exec(t, "umath.derivative", map[string]interface{}{"fn": "x +* 1", "x": 1.0})
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
		})

		t.Run("Missing fn", func(t *testing.T) {
			result := exec(t, "umath.integrate", map[string]interface{}{"a": 0.0, "b": 1.0})
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
		})
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result := exec(t, "umath.unknown", nil)
		testutil.AssertError(t, result)
		assert.Contains(t, *result.Error, "unknown tool")
	})
}

func TestCalculusOptions(t *testing.T) {
	opts := advanced.DefaultOptions()
	opts.IntegrationSteps = 2
	provider := NewProvider(opts)

	// left sum of f(x)=x over [0,1] with 2 steps: (0 + .5) / 2
	result, err := provider.Execute(context.Background(), "umath.integrate", map[string]interface{}{"fn": "x", "a": 0.0, "b": 1.0}, nil)
	require.NoError(t, err)
	testutil.AssertResultInDelta(t, result, 0.25, 1e-12)
}

func TestCombinatoricsBounds(t *testing.T) {
	provider := NewProvider(advanced.DefaultOptions())
	ctx := context.Background()

	tests := []struct {
		name   string
		toolID string
		n      float64
		ok     bool
	}{
		{"combination at the bound", "umath.combination", advanced.MaxFactorialArgument, true},
		{"combination past the bound", "umath.combination", advanced.MaxFactorialArgument + 1, false},
		{"permutation past the bound", "umath.permutation", 1e13, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			result, err := provider.Execute(ctx, tt.toolID, map[string]interface{}{"n": tt.n, "k": 0.0}, nil)
			require.NoError(t, err)
			assert.Less(t, time.Since(start), time.Second)

			if tt.ok {
				testutil.AssertSuccess(t, result)
				return
			}
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
			assert.Contains(t, *result.Error, "must not exceed")
		})
	}
}

func TestIntegrationLimits(t *testing.T) {
	ctx := context.Background()

	t.Run("Steps above the maximum are rejected", func(t *testing.T) {
		opts := advanced.DefaultOptions()
		opts.MaxIntegrationSteps = 100
		provider := NewProvider(opts)

		result, err := provider.Execute(ctx, "umath.integrate", map[string]interface{}{"fn": "x", "a": 0.0, "b": 1.0, "n": 101}, nil)
		require.NoError(t, err)
		testutil.AssertErrorKind(t, result, common.KindInvalidParams)
		assert.Contains(t, *result.Error, "maximum of 100")

		result, err = provider.Execute(ctx, "umath.integrate", map[string]interface{}{"fn": "x", "a": 0.0, "b": 1.0, "n": 100}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
	})

	t.Run("Timeout ends a long integral", func(t *testing.T) {
		opts := advanced.DefaultOptions()
		opts.MaxIntegrationSteps = 0
		opts.Expression.Timeout = 50 * time.Millisecond
		provider := NewProvider(opts)

		start := time.Now()
		result, err := provider.Execute(ctx, "umath.integrate", map[string]interface{}{"fn": "x", "a": 0.0, "b": 1.0, "n": 1e12}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Contains(t, *result.Error, "timeout")
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("Cancelled context ends a long integral", func(t *testing.T) {
		opts := advanced.DefaultOptions()
		opts.MaxIntegrationSteps = 0
		opts.Expression.Timeout = 0
		provider := NewProvider(opts)

		cctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		result, err := provider.Execute(cctx, "umath.integrate", map[string]interface{}{"fn": "x", "a": 0.0, "b": 1.0, "n": 1e12}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestParamValidation(t *testing.T) {
	provider := NewProvider(advanced.DefaultOptions())
	ctx := context.Background()

	t.Run("Integer outside the int range", func(t *testing.T) {
		for _, sides := range []float64{1e20, -1e20, gomath.Inf(1)} {
			result, err := provider.Execute(ctx, "umath.interiorAngleOfPolygon", map[string]interface{}{"sides": sides}, nil)
			require.NoError(t, err)
			testutil.AssertErrorKind(t, result, common.KindInvalidParams)
			assert.Contains(t, *result.Error, "sides parameter required")
		}
	})

	t.Run("Non-numeric step", func(t *testing.T) {
		result, err := provider.Execute(ctx, "umath.derivative", map[string]interface{}{"fn": "x*x", "x": 1.0, "h": "0.1"}, nil)
		require.NoError(t, err)
		testutil.AssertErrorKind(t, result, common.KindInvalidParams)
		assert.Contains(t, *result.Error, "h parameter must be a number")
	})

	t.Run("Zero step uses the default", func(t *testing.T) {
		result, err := provider.Execute(ctx, "umath.derivative", map[string]interface{}{"fn": "x*x", "x": 1.0, "h": 0.0}, nil)
		require.NoError(t, err)
		testutil.AssertResultInDelta(t, result, 2.0, 1e-4)
	})
}
