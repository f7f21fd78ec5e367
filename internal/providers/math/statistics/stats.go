package statistics

import (
	"context"

	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/types"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

// StatsOps handles descriptive statistics over a sample
type StatsOps struct {
	*common.MathOps
}

func valuesParam() []types.Parameter {
	return []types.Parameter{
		{Name: "values", Type: "array", Description: "Array of numbers (non-empty)", Required: true},
	}
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "umath.mean", Name: "Mean", Description: "Arithmetic mean", Parameters: valuesParam(), Returns: "number"},
		{ID: "umath.variance", Name: "Variance", Description: "Population variance", Parameters: valuesParam(), Returns: "number"},
		{ID: "umath.standardDeviation", Name: "Standard Deviation", Description: "Population standard deviation", Parameters: valuesParam(), Returns: "number"},
		{ID: "umath.median", Name: "Median", Description: "Median value", Parameters: valuesParam(), Returns: "number"},
		{ID: "umath.mode", Name: "Mode", Description: "Most frequent value, first occurrence wins ties", Parameters: valuesParam(), Returns: "number"},
	}
}

func apply(params map[string]interface{}, fn func([]float64) (float64, error)) (*types.Result, error) {
	values, ok := common.GetNumbers(params, "values")
	if !ok {
		return common.Failure("values parameter required (array of numbers)")
	}
	return common.NumberOrError(fn(values))
}

// Mean calculates the arithmetic mean
func (s *StatsOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, umath.Mean)
}

// Variance calculates the population variance
func (s *StatsOps) Variance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, umath.Variance)
}

// StandardDeviation calculates the population standard deviation
func (s *StatsOps) StandardDeviation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, umath.StandardDeviation)
}

// Median finds the middle value
func (s *StatsOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, umath.Median)
}

// Mode finds the most frequent value
func (s *StatsOps) Mode(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return apply(params, umath.Mode)
}
