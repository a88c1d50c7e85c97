// Package placement computes where symptom markers are plotted on a body map
// silhouette.
package placement

import (
	"github.com/golang/geo/r2"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/severity"
	"github.com/jengzang/bodymap-backend-go/internal/spatial"
)

// FallbackPosition returns the position of the ordinal-th coordinate-less
// marker in a region anchored at anchor
func FallbackPosition(anchor r2.Point, ordinal int) r2.Point {
	return anchor.Add(spatial.GoldenSpiralOffset(ordinal))
}

// Place returns one placement per record drawable on view, in input order.
//
// A record is drawable when its region id is a catalog region of view.
// Stored coordinates for the same view are used as is; otherwise the marker
// goes on a golden-angle spiral around the region anchor, indexed by how many
// fallback markers that region has received so far in this call.
func Place(records []models.SymptomRecord, view bodymap.View) []models.MarkerPlacement {
	out := make([]models.MarkerPlacement, 0, len(records))
	ordinals := make(map[string]int)

	for _, rec := range records {
		if rec.RegionID == "" {
			continue
		}
		region, ok := bodymap.RegionByID(rec.RegionID)
		if !ok || region.View != view {
			continue
		}

		m := models.MarkerPlacement{
			Symptom: rec,
			Color:   severity.Color(severity.Effective(rec.Severity)),
		}

		if c := rec.Coordinates; c != nil && c.View == string(view) {
			m.X, m.Y = c.X, c.Y
		} else {
			ordinal := ordinals[rec.RegionID]
			ordinals[rec.RegionID] = ordinal + 1
			p := FallbackPosition(region.Anchor, ordinal)
			m.X, m.Y = p.X, p.Y
			m.Fallback = true
		}

		out = append(out, m)
	}

	return out
}
