package operations

import (
	"context"

	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/types"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

// ArithmeticOps handles arithmetic and algebra operations
type ArithmeticOps struct {
	*common.MathOps
}

func binaryParams(a, b, descA, descB string) []types.Parameter {
	return []types.Parameter{
		{Name: a, Type: "number", Description: descA, Required: true},
		{Name: b, Type: "number", Description: descB, Required: true},
	}
}

func quadraticParams() []types.Parameter {
	return []types.Parameter{
		{Name: "a", Type: "number", Description: "Coefficient of x² (non-zero)", Required: true},
		{Name: "b", Type: "number", Description: "Coefficient of x", Required: true},
		{Name: "c", Type: "number", Description: "Constant term", Required: true},
	}
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "umath.add",
			Name:        "Add",
			Description: "Add two numbers",
			Parameters:  binaryParams("a", "b", "First number", "Second number"),
			Returns:     "number",
		},
		{
			ID:          "umath.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters:  binaryParams("a", "b", "First number", "Second number"),
			Returns:     "number",
		},
		{
			ID:          "umath.multiply",
			Name:        "Multiply",
			Description: "Multiply two numbers",
			Parameters:  binaryParams("a", "b", "First number", "Second number"),
			Returns:     "number",
		},
		{
			ID:          "umath.divide",
			Name:        "Divide",
			Description: "Divide a by b (fails when b is zero)",
			Parameters:  binaryParams("a", "b", "Dividend", "Divisor"),
			Returns:     "number",
		},
		{
			ID:          "umath.power",
			Name:        "Power",
			Description: "Raise base to the power of exponent",
			Parameters:  binaryParams("base", "exponent", "Base", "Exponent"),
			Returns:     "number",
		},
		{
			ID:          "umath.logarithm",
			Name:        "Logarithm",
			Description: "Logarithm of value in the given base (value > 0, base > 1)",
			Parameters:  binaryParams("value", "base", "Positive value", "Base greater than 1"),
			Returns:     "number",
		},
		{
			ID:          "umath.quadraticRoot1",
			Name:        "Quadratic Root (+)",
			Description: "Root (-b + √D) / 2a of a·x² + b·x + c = 0",
			Parameters:  quadraticParams(),
			Returns:     "number",
		},
		{
			ID:          "umath.quadraticRoot2",
			Name:        "Quadratic Root (-)",
			Description: "Root (-b - √D) / 2a of a·x² + b·x + c = 0",
			Parameters:  quadraticParams(),
			Returns:     "number",
		},
	}
}

// Add adds a and b
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(umath.Add(vals[0], vals[1]))
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(umath.Subtract(vals[0], vals[1]))
}

// Multiply multiplies a and b
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(umath.Multiply(vals[0], vals[1]))
}

// Divide divides a by b
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "a", "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.Divide(vals[0], vals[1]))
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "base", "exponent")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(umath.Power(vals[0], vals[1]))
}

// Logarithm calculates log of value in base
func (a *ArithmeticOps) Logarithm(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "value", "base")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.Logarithm(vals[0], vals[1]))
}

// QuadraticRoot1 returns the larger-numerator root
func (a *ArithmeticOps) QuadraticRoot1(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "a", "b", "c")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.QuadraticRoot1(vals[0], vals[1], vals[2]))
}

// QuadraticRoot2 returns the smaller-numerator root
func (a *ArithmeticOps) QuadraticRoot2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "a", "b", "c")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.QuadraticRoot2(vals[0], vals[1], vals[2]))
}
