package math

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/umath/internal/providers/math/advanced"
	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/providers/math/operations"
	"github.com/GriffinCanCode/umath/internal/providers/math/statistics"
	"github.com/GriffinCanCode/umath/internal/types"
)

// ServiceID is the registry id of the formula catalog
const ServiceID = "umath"

// Provider exposes the formula catalog as tools
type Provider struct {
	// Module instances
	arithmetic    *operations.ArithmeticOps
	trig          *operations.TrigOps
	geometry      *operations.GeometryOps
	stats         *statistics.StatsOps
	combinatorics *advanced.CombinatoricsOps
	calculus      *advanced.CalculusOps
}

// NewProvider creates a modular math provider
func NewProvider(opts advanced.Options) *Provider {
	ops := &common.MathOps{}

	return &Provider{
		arithmetic:    &operations.ArithmeticOps{MathOps: ops},
		trig:          &operations.TrigOps{MathOps: ops},
		geometry:      &operations.GeometryOps{MathOps: ops},
		stats:         &statistics.StatsOps{MathOps: ops},
		combinatorics: &advanced.CombinatoricsOps{MathOps: ops},
		calculus:      &advanced.CalculusOps{MathOps: ops, Options: opts},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.geometry.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.combinatorics.GetTools()...)
	tools = append(tools, m.calculus.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Formula Catalog",
		Description: "Closed-form formulas (arithmetic, algebra, geometry, trig, combinatorics, calculus, statistics, number theory)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"algebra",
			"geometry",
			"trigonometry",
			"combinatorics",
			"calculus",
			"statistics",
			"number_theory",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	switch toolID {
	// Arithmetic and algebra
	case "umath.add":
		return m.arithmetic.Add(ctx, params, appCtx)
	case "umath.subtract":
		return m.arithmetic.Subtract(ctx, params, appCtx)
	case "umath.multiply":
		return m.arithmetic.Multiply(ctx, params, appCtx)
	case "umath.divide":
		return m.arithmetic.Divide(ctx, params, appCtx)
	case "umath.power":
		return m.arithmetic.Power(ctx, params, appCtx)
	case "umath.logarithm":
		return m.arithmetic.Logarithm(ctx, params, appCtx)
	case "umath.quadraticRoot1":
		return m.arithmetic.QuadraticRoot1(ctx, params, appCtx)
	case "umath.quadraticRoot2":
		return m.arithmetic.QuadraticRoot2(ctx, params, appCtx)

	// Trig operations
	case "umath.sinDegrees":
		return m.trig.Sin(ctx, params, appCtx)
	case "umath.cosDegrees":
		return m.trig.Cos(ctx, params, appCtx)
	case "umath.tanDegrees":
		return m.trig.Tan(ctx, params, appCtx)

	// Geometry
	case "umath.areaOfCircle":
		return m.geometry.AreaOfCircle(ctx, params, appCtx)
	case "umath.circumferenceOfCircle":
		return m.geometry.CircumferenceOfCircle(ctx, params, appCtx)
	case "umath.areaOfSemicircle":
		return m.geometry.AreaOfSemicircle(ctx, params, appCtx)
	case "umath.perimeterOfSemicircle":
		return m.geometry.PerimeterOfSemicircle(ctx, params, appCtx)
	case "umath.areaOfRectangle":
		return m.geometry.AreaOfRectangle(ctx, params, appCtx)
	case "umath.perimeterOfRectangle":
		return m.geometry.PerimeterOfRectangle(ctx, params, appCtx)
	case "umath.areaOfParallelogram":
		return m.geometry.AreaOfParallelogram(ctx, params, appCtx)
	case "umath.perimeterOfParallelogram":
		return m.geometry.PerimeterOfParallelogram(ctx, params, appCtx)
	case "umath.areaOfTrapezium":
		return m.geometry.AreaOfTrapezium(ctx, params, appCtx)
	case "umath.perimeterOfTrapezium":
		return m.geometry.PerimeterOfTrapezium(ctx, params, appCtx)
	case "umath.areaOfRegularPolygon":
		return m.geometry.AreaOfRegularPolygon(ctx, params, appCtx)
	case "umath.perimeterOfRegularPolygon":
		return m.geometry.PerimeterOfRegularPolygon(ctx, params, appCtx)
	case "umath.interiorAngleOfPolygon":
		return m.geometry.InteriorAngleOfPolygon(ctx, params, appCtx)
	case "umath.exteriorAngleOfPolygon":
		return m.geometry.ExteriorAngleOfPolygon(ctx, params, appCtx)

	// Stats operations
	case "umath.mean":
		return m.stats.Mean(ctx, params, appCtx)
	case "umath.variance":
		return m.stats.Variance(ctx, params, appCtx)
	case "umath.standardDeviation":
		return m.stats.StandardDeviation(ctx, params, appCtx)
	case "umath.median":
		return m.stats.Median(ctx, params, appCtx)
	case "umath.mode":
		return m.stats.Mode(ctx, params, appCtx)

	// Combinatorics and number theory
	case "umath.combination":
		return m.combinatorics.Combination(ctx, params, appCtx)
	case "umath.permutation":
		return m.combinatorics.Permutation(ctx, params, appCtx)
	case "umath.gcd":
		return m.combinatorics.GCD(ctx, params, appCtx)
	case "umath.lcm":
		return m.combinatorics.LCM(ctx, params, appCtx)

	// Calculus
	case "umath.derivative":
		return m.calculus.Derivative(ctx, params, appCtx)
	case "umath.integrate":
		return m.calculus.Integrate(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
