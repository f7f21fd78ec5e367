package umath

import (
	"math"
)

// SinDegrees returns the sine of an angle in degrees
func SinDegrees(angle float64) float64 {
	return math.Sin(radians(angle))
}

// CosDegrees returns the cosine of an angle in degrees
func CosDegrees(angle float64) float64 {
	return math.Cos(radians(angle))
}

// TanDegrees returns the tangent of an angle in degrees. Odd multiples of 90°
// are not guarded and produce a very large magnitude.
func TanDegrees(angle float64) float64 {
	return math.Tan(radians(angle))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
