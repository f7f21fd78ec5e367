package umath

import (
	"math"
)

// Geometry formulas do not validate lengths; negative inputs are the
// caller's responsibility.

// minPolygonSides is the smallest side count of a polygon
const minPolygonSides = 3

// AreaOfCircle returns πr²
func AreaOfCircle(radius float64) float64 {
	return math.Pi * radius * radius
}

// CircumferenceOfCircle returns 2πr
func CircumferenceOfCircle(radius float64) float64 {
	return 2 * math.Pi * radius
}

// AreaOfSemicircle returns πr²/2
func AreaOfSemicircle(radius float64) float64 {
	return (math.Pi * radius * radius) / 2
}

// PerimeterOfSemicircle returns the arc plus the diameter, πr + 2r
func PerimeterOfSemicircle(radius float64) float64 {
	return (math.Pi * radius) + (2 * radius)
}

// AreaOfRectangle returns length × width
func AreaOfRectangle(length, width float64) float64 {
	return length * width
}

// PerimeterOfRectangle returns 2(length + width)
func PerimeterOfRectangle(length, width float64) float64 {
	return 2 * (length + width)
}

// AreaOfParallelogram returns base × height
func AreaOfParallelogram(base, height float64) float64 {
	return base * height
}

// PerimeterOfParallelogram returns 2(base + sideLength)
func PerimeterOfParallelogram(base, sideLength float64) float64 {
	return 2 * (base + sideLength)
}

// AreaOfTrapezium returns the mean of the parallel sides times the height
func AreaOfTrapezium(base1, base2, height float64) float64 {
	return ((base1 + base2) / 2) * height
}

// PerimeterOfTrapezium returns the sum of all four sides
func PerimeterOfTrapezium(side1, side2, base1, base2 float64) float64 {
	return side1 + side2 + base1 + base2
}

// AreaOfRegularPolygon returns n·s² / (4·tan(π/n))
func AreaOfRegularPolygon(sides int, sideLength float64) (float64, error) {
	if err := validateSides(sides); err != nil {
		return 0, err
	}
	n := float64(sides)
	return (n * sideLength * sideLength) / (4 * math.Tan(math.Pi/n)), nil
}

// PerimeterOfRegularPolygon returns n·s
func PerimeterOfRegularPolygon(sides int, sideLength float64) (float64, error) {
	if err := validateSides(sides); err != nil {
		return 0, err
	}
	return float64(sides) * sideLength, nil
}

// InteriorAngleOfPolygon returns each interior angle of a regular polygon in degrees
func InteriorAngleOfPolygon(sides int) (float64, error) {
	if err := validateSides(sides); err != nil {
		return 0, err
	}
	return float64(sides-2) * 180.0 / float64(sides), nil
}

// ExteriorAngleOfPolygon returns each exterior angle of a regular polygon in degrees
func ExteriorAngleOfPolygon(sides int) (float64, error) {
	if err := validateSides(sides); err != nil {
		return 0, err
	}
	return 360.0 / float64(sides), nil
}

func validateSides(sides int) error {
	if sides < minPolygonSides {
		return invalidArgument("a polygon must have at least %d sides", minPolygonSides)
	}
	return nil
}
