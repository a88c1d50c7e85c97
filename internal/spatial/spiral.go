package spatial

import (
	"math"

	"github.com/golang/geo/r2"
)

const (
	// GoldenAngleDegrees is the angular step between consecutive spiral points
	GoldenAngleDegrees = 137.5

	// SpiralBaseRadius is the radius of the first point (ordinal 0)
	SpiralBaseRadius = 4.0

	// SpiralRadiusStep is the radius growth per ordinal
	SpiralRadiusStep = 3.0

	// SpiralMaxRadius caps the radius so points stay within a region's footprint
	SpiralMaxRadius = 15.0
)

// SpiralRadius returns the capped radius for the given ordinal
func SpiralRadius(ordinal int) float64 {
	return math.Min(SpiralBaseRadius+float64(ordinal)*SpiralRadiusStep, SpiralMaxRadius)
}

// GoldenSpiralOffset returns the offset of the ordinal-th point of a golden
// angle spiral centred on the origin. It is a pure function of ordinal.
func GoldenSpiralOffset(ordinal int) r2.Point {
	angle := float64(ordinal) * GoldenAngleDegrees * math.Pi / 180
	radius := SpiralRadius(ordinal)
	return r2.Point{
		X: math.Cos(angle) * radius,
		Y: math.Sin(angle) * radius,
	}
}
