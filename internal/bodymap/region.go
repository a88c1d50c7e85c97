// Package bodymap holds the anatomical region catalog and the lookups used to
// resolve symptom region ids against it.
//
// The catalog is a fixed table built into the binary. Indexes over it are
// built once at init and never mutated, so every function here is safe for
// concurrent use and total over all string inputs: unknown ids are reported
// through ok results or reflexive fallbacks, never errors.
package bodymap

import (
	"strings"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/jengzang/bodymap-backend-go/internal/spatial"
)

// View is the silhouette a region is drawn on
type View string

const (
	Front View = "front"
	Back  View = "back"
)

// Views lists the silhouettes in display order
var Views = []View{Front, Back}

// ParseView accepts "front" or "back" in any case
func ParseView(s string) (View, bool) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case Front:
		return Front, true
	case Back:
		return Back, true
	}
	return "", false
}

// ViewBox is the SVG coordinate space of outlines and anchors
var ViewBox = r2.Rect{
	X: r1.Interval{Lo: 50, Hi: 230},
	Y: r1.Interval{Lo: 0, Hi: 400},
}

// Region is a catalog entry
type Region struct {
	ID           string
	Label        string
	ParentRegion string // Coarse id this region rolls up to; need not be a catalog entry
	View         View
	Outline      string   // SVG path in ViewBox coordinates
	Anchor       r2.Point // Visual centre used for labels and fallback markers

	polygon []r2.Point
	bounds  r2.Rect
}

// Polygon returns the flattened outline
func (r Region) Polygon() []r2.Point {
	out := make([]r2.Point, len(r.polygon))
	copy(out, r.polygon)
	return out
}

// Bounds returns the bounding rectangle of the outline
func (r Region) Bounds() r2.Rect {
	return r.bounds
}

// Contains reports whether the point lies inside the outline
func (r Region) Contains(p r2.Point) bool {
	if !r.bounds.ContainsPoint(p) {
		return false
	}
	return spatial.PointInPolygon(p, r.polygon)
}
