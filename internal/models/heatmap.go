package models

// HeatmapEntry represents the aggregate for one body region
type HeatmapEntry struct {
	RegionID          string  `json:"region_id"`
	Count             int     `json:"count"`        // >= 1
	AvgSeverity       float64 `json:"avg_severity"` // Mean with missing severities as 5
	MaxSeverity       int     `json:"max_severity"`
	NormalizedDensity float64 `json:"normalized_density"` // count / max count, in (0, 1]
	FillColor         string  `json:"fill_color"`         // Band colour of AvgSeverity
	FillOpacity       float64 `json:"fill_opacity"`       // 0.15 - 0.65
}

// MarkerPlacement is the plotted position of one symptom
type MarkerPlacement struct {
	Symptom  SymptomRecord `json:"symptom"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Color    string        `json:"color"`
	Fallback bool          `json:"fallback"` // true when computed from the region anchor
}

// BodyMapResponse represents the body map API response
type BodyMapResponse struct {
	View         string            `json:"view"`
	Regions      []HeatmapEntry    `json:"regions"`  // Entries for catalog regions of View
	Unmapped     []HeatmapEntry    `json:"unmapped"` // Entries whose id has no drawable region in View
	Markers      []MarkerPlacement `json:"markers"`
	SymptomCount int               `json:"symptom_count"`
	RegionCount  int               `json:"region_count"` // Distinct region ids across all views
	MaxCount     int               `json:"max_count"`
}

// BreakdownRow represents count and severity stats for one group
type BreakdownRow struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Count       int     `json:"count"`
	AvgSeverity float64 `json:"avg_severity"`
	MaxSeverity int     `json:"max_severity"`
}

// SymptomBreakdown represents a grouping of symptoms for report composition
type SymptomBreakdown struct {
	GroupBy     string         `json:"group_by"` // "type" or "body_part"
	Rows        []BreakdownRow `json:"rows"`
	TotalCount  int            `json:"total_count"`
	AvgSeverity float64        `json:"avg_severity"`
}
