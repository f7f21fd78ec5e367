package operations

import (
	"context"

	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/types"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

// TrigOps handles trigonometric operations on angles in degrees
type TrigOps struct {
	*common.MathOps
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	angle := []types.Parameter{
		{Name: "angle", Type: "number", Description: "Angle in degrees", Required: true},
	}
	return []types.Tool{
		{
			ID:          "umath.sinDegrees",
			Name:        "Sine (degrees)",
			Description: "Calculate sine of an angle given in degrees",
			Parameters:  angle,
			Returns:     "number",
		},
		{
			ID:          "umath.cosDegrees",
			Name:        "Cosine (degrees)",
			Description: "Calculate cosine of an angle given in degrees",
			Parameters:  angle,
			Returns:     "number",
		},
		{
			ID:          "umath.tanDegrees",
			Name:        "Tangent (degrees)",
			Description: "Calculate tangent of an angle given in degrees",
			Parameters:  angle,
			Returns:     "number",
		},
	}
}

// Sin calculates sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	angle, ok := common.GetNumber(params, "angle")
	if !ok {
		return common.Failure("angle parameter required")
	}
	return common.Number(umath.SinDegrees(angle))
}

// Cos calculates cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	angle, ok := common.GetNumber(params, "angle")
	if !ok {
		return common.Failure("angle parameter required")
	}
	return common.Number(umath.CosDegrees(angle))
}

// Tan calculates tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	angle, ok := common.GetNumber(params, "angle")
	if !ok {
		return common.Failure("angle parameter required")
	}
	return common.Number(umath.TanDegrees(angle))
}
