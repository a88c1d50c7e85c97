package spatial

import (
	"math"

	"github.com/golang/geo/r2"
)

// Centroid calculates the arithmetic centroid of a set of points
func Centroid(points []r2.Point) r2.Point {
	if len(points) == 0 {
		return r2.Point{}
	}

	var sum r2.Point
	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum.Mul(1 / float64(len(points)))
}

// Bounds returns the smallest rectangle containing all points.
// An empty input yields an empty rectangle.
func Bounds(points []r2.Point) r2.Rect {
	if len(points) == 0 {
		return r2.EmptyRect()
	}
	return r2.RectFromPoints(points...)
}

// PolygonArea calculates the area of a simple polygon using the shoelace formula
// Points should be in order (clockwise or counter-clockwise)
func PolygonArea(points []r2.Point) float64 {
	if len(points) < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < len(points); i++ {
		j := (i + 1) % len(points)
		sum += points[i].Cross(points[j])
	}

	return math.Abs(sum) / 2
}

// PointInPolygon checks if a point is inside a polygon using ray casting
func PointInPolygon(point r2.Point, polygon []r2.Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		if ((polygon[i].Y > point.Y) != (polygon[j].Y > point.Y)) &&
			(point.X < (polygon[j].X-polygon[i].X)*(point.Y-polygon[i].Y)/(polygon[j].Y-polygon[i].Y)+polygon[i].X) {
			inside = !inside
		}
		j = i
	}

	return inside
}
