package models

// Point is a position in SVG view box coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionInfo represents a catalog region as returned by the API
type RegionInfo struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	ParentRegion string `json:"parent_region"`
	View         string `json:"view"`
	Path         string `json:"path"`
	Anchor       Point  `json:"anchor"`
}

// RegionLookup represents the resolution of an arbitrary region id
type RegionLookup struct {
	ID           string      `json:"id"`
	Known        bool        `json:"known"`  // true when id is a catalog region
	Coarse       bool        `json:"coarse"` // true when id groups catalog regions
	Label        string      `json:"label"`
	ParentRegion string      `json:"parent_region,omitempty"`
	Region       *RegionInfo `json:"region,omitempty"`
}

// ParentGroup represents a coarse region id with its children count
type ParentGroup struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	ChildCount int    `json:"child_count"`
}
