package operations

import (
	"context"

	"github.com/GriffinCanCode/umath/internal/providers/math/common"
	"github.com/GriffinCanCode/umath/internal/types"
	"github.com/GriffinCanCode/umath/pkg/umath"
)

// GeometryOps handles area, perimeter and polygon angle formulas
type GeometryOps struct {
	*common.MathOps
}

func lengths(names ...string) []types.Parameter {
	params := make([]types.Parameter, 0, len(names))
	for _, name := range names {
		params = append(params, types.Parameter{Name: name, Type: "number", Description: "Length of " + name, Required: true})
	}
	return params
}

func polygonParams(withLength bool) []types.Parameter {
	params := []types.Parameter{
		{Name: "sides", Type: "integer", Description: "Number of sides (at least 3)", Required: true},
	}
	if withLength {
		params = append(params, types.Parameter{Name: "sideLength", Type: "number", Description: "Length of each side", Required: true})
	}
	return params
}

// GetTools returns geometry tool definitions
func (g *GeometryOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "umath.areaOfCircle", Name: "Circle Area", Description: "Area of a circle (πr²)", Parameters: lengths("radius"), Returns: "number"},
		{ID: "umath.circumferenceOfCircle", Name: "Circle Circumference", Description: "Circumference of a circle (2πr)", Parameters: lengths("radius"), Returns: "number"},
		{ID: "umath.areaOfSemicircle", Name: "Semicircle Area", Description: "Area of a semicircle (πr²/2)", Parameters: lengths("radius"), Returns: "number"},
		{ID: "umath.perimeterOfSemicircle", Name: "Semicircle Perimeter", Description: "Perimeter of a semicircle (πr + 2r)", Parameters: lengths("radius"), Returns: "number"},
		{ID: "umath.areaOfRectangle", Name: "Rectangle Area", Description: "Area of a rectangle", Parameters: lengths("length", "width"), Returns: "number"},
		{ID: "umath.perimeterOfRectangle", Name: "Rectangle Perimeter", Description: "Perimeter of a rectangle", Parameters: lengths("length", "width"), Returns: "number"},
		{ID: "umath.areaOfParallelogram", Name: "Parallelogram Area", Description: "Area of a parallelogram", Parameters: lengths("base", "height"), Returns: "number"},
		{ID: "umath.perimeterOfParallelogram", Name: "Parallelogram Perimeter", Description: "Perimeter of a parallelogram", Parameters: lengths("base", "sideLength"), Returns: "number"},
		{ID: "umath.areaOfTrapezium", Name: "Trapezium Area", Description: "Area of a trapezium from its parallel sides and height", Parameters: lengths("base1", "base2", "height"), Returns: "number"},
		{ID: "umath.perimeterOfTrapezium", Name: "Trapezium Perimeter", Description: "Sum of the four sides of a trapezium", Parameters: lengths("side1", "side2", "base1", "base2"), Returns: "number"},
		{ID: "umath.areaOfRegularPolygon", Name: "Regular Polygon Area", Description: "Area of a regular polygon", Parameters: polygonParams(true), Returns: "number"},
		{ID: "umath.perimeterOfRegularPolygon", Name: "Regular Polygon Perimeter", Description: "Perimeter of a regular polygon", Parameters: polygonParams(true), Returns: "number"},
		{ID: "umath.interiorAngleOfPolygon", Name: "Interior Angle", Description: "Interior angle of a regular polygon in degrees", Parameters: polygonParams(false), Returns: "number"},
		{ID: "umath.exteriorAngleOfPolygon", Name: "Exterior Angle", Description: "Exterior angle of a regular polygon in degrees", Parameters: polygonParams(false), Returns: "number"},
	}
}

// unary applies a one-length formula
func unary(params map[string]interface{}, key string, fn func(float64) float64) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, key)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(fn(vals[0]))
}

// binary applies a two-length formula
func binary(params map[string]interface{}, a, b string, fn func(float64, float64) float64) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, a, b)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(fn(vals[0], vals[1]))
}

// AreaOfCircle calculates πr²
func (g *GeometryOps) AreaOfCircle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return unary(params, "radius", umath.AreaOfCircle)
}

// CircumferenceOfCircle calculates 2πr
func (g *GeometryOps) CircumferenceOfCircle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return unary(params, "radius", umath.CircumferenceOfCircle)
}

// AreaOfSemicircle calculates πr²/2
func (g *GeometryOps) AreaOfSemicircle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return unary(params, "radius", umath.AreaOfSemicircle)
}

// PerimeterOfSemicircle calculates πr + 2r
func (g *GeometryOps) PerimeterOfSemicircle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return unary(params, "radius", umath.PerimeterOfSemicircle)
}

// AreaOfRectangle calculates length × width
func (g *GeometryOps) AreaOfRectangle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, "length", "width", umath.AreaOfRectangle)
}

// PerimeterOfRectangle calculates 2(length + width)
func (g *GeometryOps) PerimeterOfRectangle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, "length", "width", umath.PerimeterOfRectangle)
}

// AreaOfParallelogram calculates base × height
func (g *GeometryOps) AreaOfParallelogram(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, "base", "height", umath.AreaOfParallelogram)
}

// PerimeterOfParallelogram calculates 2(base + sideLength)
func (g *GeometryOps) PerimeterOfParallelogram(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return binary(params, "base", "sideLength", umath.PerimeterOfParallelogram)
}

// AreaOfTrapezium calculates ((base1 + base2) / 2) × height
func (g *GeometryOps) AreaOfTrapezium(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "base1", "base2", "height")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(umath.AreaOfTrapezium(vals[0], vals[1], vals[2]))
}

// PerimeterOfTrapezium sums the four sides
func (g *GeometryOps) PerimeterOfTrapezium(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	vals, err := common.RequireNumbers(params, "side1", "side2", "base1", "base2")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Number(umath.PerimeterOfTrapezium(vals[0], vals[1], vals[2], vals[3]))
}

// AreaOfRegularPolygon calculates n·s² / (4·tan(π/n))
func (g *GeometryOps) AreaOfRegularPolygon(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return polygon(params, umath.AreaOfRegularPolygon)
}

// PerimeterOfRegularPolygon calculates n·s
func (g *GeometryOps) PerimeterOfRegularPolygon(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return polygon(params, umath.PerimeterOfRegularPolygon)
}

// InteriorAngleOfPolygon calculates (n-2)·180/n
func (g *GeometryOps) InteriorAngleOfPolygon(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sides, err := common.RequireInt(params, "sides")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.InteriorAngleOfPolygon(sides))
}

// ExteriorAngleOfPolygon calculates 360/n
func (g *GeometryOps) ExteriorAngleOfPolygon(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sides, err := common.RequireInt(params, "sides")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(umath.ExteriorAngleOfPolygon(sides))
}

func polygon(params map[string]interface{}, fn func(int, float64) (float64, error)) (*types.Result, error) {
	sides, err := common.RequireInt(params, "sides")
	if err != nil {
		return common.Failure(err.Error())
	}
	vals, err := common.RequireNumbers(params, "sideLength")
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.NumberOrError(fn(sides, vals[0]))
}
