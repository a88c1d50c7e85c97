// Package severity maps numeric symptom severities onto the four display
// bands. Every colour decision in the body map goes through Classify so the
// heatmap fill, marker colour and legend can never disagree.
package severity

import "math"

// Default is used wherever a severity is required but the record has none
const Default = 5

// Band is a discrete severity category with its canonical colour
type Band struct {
	Label string `json:"label"`
	Color string `json:"color"` // hex, e.g. "#22c55e"
	Range string `json:"range"` // inclusive 1-10 range shown in the legend
	upper float64
}

var (
	Mild     = Band{Label: "Mild", Color: "#22c55e", Range: "1-3", upper: 3}
	Moderate = Band{Label: "Moderate", Color: "#eab308", Range: "4-5", upper: 5}
	Severe   = Band{Label: "Severe", Color: "#f97316", Range: "6-7", upper: 7}
	Critical = Band{Label: "Critical", Color: "#ef4444", Range: "8-10", upper: math.Inf(1)}
)

// bands is ordered from mildest to harshest
var bands = []Band{Mild, Moderate, Severe, Critical}

// Classify returns the band for any real severity, including averages.
// Upper bounds are inclusive; NaN falls through to Critical.
func Classify(severity float64) Band {
	for _, b := range bands[:len(bands)-1] {
		if severity <= b.upper {
			return b
		}
	}
	return Critical
}

// Color returns the canonical hex colour for a severity
func Color(severity float64) string {
	return Classify(severity).Color
}

// Label returns the band label for a severity
func Label(severity float64) string {
	return Classify(severity).Label
}

// Rank returns the band's position from 0 (Mild) to 3 (Critical)
func Rank(b Band) int {
	for i, candidate := range bands {
		if candidate.Label == b.Label {
			return i
		}
	}
	return -1
}

// Effective returns the stored severity, or Default when it is missing
func Effective(severity *int) float64 {
	if severity == nil {
		return Default
	}
	return float64(*severity)
}

// Legend returns all bands from mildest to harshest
func Legend() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}
