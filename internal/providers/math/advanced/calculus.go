package advanced

import (
	"context"
	"errors"
	"fmt"

	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/providers/math/expression"
	"github.com/GriffinCanCode/umath/internal/types"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

var errFnRequired = errors.New("fn parameter required (expression in x)")

// DefaultMaxIntegrationSteps caps n for a single integrate call
const DefaultMaxIntegrationSteps = 10_000_000

// Options holds calculus defaults applied when a call omits h or n
type Options struct {
	DerivativeStep      float64
	IntegrationSteps    int
	MaxIntegrationSteps int // 0 disables the cap
	Expression          expression.Config
}

// DefaultOptions returns the catalog defaults
func DefaultOptions() Options {
	return Options{
		DerivativeStep:      umath.DefaultDerivativeStep,
		IntegrationSteps:    umath.DefaultIntegrationSteps,
		MaxIntegrationSteps: DefaultMaxIntegrationSteps,
		Expression:          expression.DefaultConfig(),
	}
}

// CalculusOps evaluates derivatives and integrals of JavaScript expressions in x
type CalculusOps struct {
	*common.MathOps
	Options Options
}

// GetTools returns calculus tool definitions
func (c *CalculusOps) GetTools() []types.Tool {
	fn := types.Parameter{Name: "fn", Type: "string", Description: "JavaScript expression in x, e.g. x*x + Math.sin(x)", Required: true}
	return []types.Tool{
		{
			ID:          "umath.derivative",
			Name:        "Derivative",
			Description: "Central-difference derivative (f(x+h) - f(x-h)) / 2h",
			Parameters: []types.Parameter{
				fn,
				{Name: "x", Type: "number", Description: "Point of evaluation", Required: true},
				{Name: "h", Type: "number", Description: "Step size (0 or omitted uses the configured default)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "umath.integrate",
			Name:        "Integral",
			Description: "Left-endpoint Riemann sum over [a, b]",
			Parameters: []types.Parameter{
				fn,
				{Name: "a", Type: "number", Description: "Lower bound", Required: true},
				{Name: "b", Type: "number", Description: "Upper bound", Required: true},
				{Name: "n", Type: "integer", Description: "Number of steps (omitted uses the configured default)", Required: false},
			},
			Returns: "number",
		},
	}
}

func (c *CalculusOps) compile(params map[string]interface{}) (*expression.Expression, error) {
	source, ok := common.GetString(params, "fn")
	if !ok {
		return nil, errFnRequired
	}
	return expression.CompileWithConfig(source, c.Options.Expression)
}

// Derivative approximates f'(x)
func (c *CalculusOps) Derivative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	expr, err := c.compile(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	vals, err := common.RequireNumbers(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}

	h := c.Options.DerivativeStep
	if _, present := params["h"]; present {
		v, ok := common.GetNumber(params, "h")
		if !ok {
			return common.Failure("h parameter must be a number")
		}
		if v != 0 {
			h = v
		}
	}

	result, err := expr.Run(ctx, func(f umath.Func) float64 {
		return umath.DerivativeStep(f, vals[0], h)
	})
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(result)
}

// Integrate approximates the definite integral of f over [a, b]
func (c *CalculusOps) Integrate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	expr, err := c.compile(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	bounds, err := common.RequireNumbers(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}

	n := c.Options.IntegrationSteps
	if _, present := params["n"]; present {
		if n, err = common.RequireInt(params, "n"); err != nil {
			return common.Failure(err.Error())
		}
	}
	if limit := c.Options.MaxIntegrationSteps; limit > 0 && n > limit {
		return common.Failure(fmt.Sprintf("n exceeds the maximum of %d steps", limit))
	}

	var integErr error
	result, err := expr.Run(ctx, func(f umath.Func) float64 {
		v, e := umath.IntegrateSteps(f, bounds[0], bounds[1], n)
		integErr = e
		return v
	})
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(result, integErr)
}
