// Package heatmap aggregates symptom records per body region and derives the
// fill colour and opacity each region is drawn with.
package heatmap

import (
	"sort"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/severity"
	"github.com/jengzang/bodymap-backend-go/internal/stats"
)

const (
	// OpacityFloor keeps the least dense region visible
	OpacityFloor = 0.15

	// OpacityRange is added on top of the floor at full density
	OpacityRange = 0.5
)

// Opacity maps a normalized density onto the fill opacity
func Opacity(density float64) float64 {
	return OpacityFloor + density*OpacityRange
}

// Compute groups records by their exact stored region id and returns one
// entry per id with at least one record. Records with an empty region id are
// ignored. The result depends only on the region ids and severities of
// records, so equal inputs yield identical maps.
func Compute(records []models.SymptomRecord) map[string]models.HeatmapEntry {
	groups := stats.NewGrouped()
	for _, r := range records {
		if r.RegionID == "" {
			continue
		}
		groups.Add(r.RegionID, severity.Effective(r.Severity))
	}

	result := make(map[string]models.HeatmapEntry, groups.Len())
	if groups.Len() == 0 {
		return result
	}

	maxCount := groups.MaxCount()
	if maxCount < 1 {
		maxCount = 1
	}

	for _, id := range groups.Keys() {
		s, _ := groups.Summary(id)
		density := float64(s.Count) / float64(maxCount)
		result[id] = models.HeatmapEntry{
			RegionID:          id,
			Count:             s.Count,
			AvgSeverity:       s.Mean,
			MaxSeverity:       int(s.Max),
			NormalizedDensity: density,
			FillColor:         severity.Color(s.Mean),
			FillOpacity:       Opacity(density),
		}
	}

	return result
}

// Entries flattens a heatmap into a slice ordered by count descending, then
// region id ascending
func Entries(heatmap map[string]models.HeatmapEntry) []models.HeatmapEntry {
	out := make([]models.HeatmapEntry, 0, len(heatmap))
	for _, e := range heatmap {
		out = append(out, e)
	}
	sortEntries(out)
	return out
}

// SplitByView separates entries drawable on view from ids that have no
// catalog region at all (coarse or unknown). Regions of the other silhouette
// are in neither result.
func SplitByView(heatmap map[string]models.HeatmapEntry, view bodymap.View) (drawable, unmapped []models.HeatmapEntry) {
	drawable = make([]models.HeatmapEntry, 0, len(heatmap))
	unmapped = make([]models.HeatmapEntry, 0)
	for id, e := range heatmap {
		r, ok := bodymap.RegionByID(id)
		switch {
		case !ok:
			unmapped = append(unmapped, e)
		case r.View == view:
			drawable = append(drawable, e)
		}
	}
	sortEntries(drawable)
	sortEntries(unmapped)
	return drawable, unmapped
}

// MaxCount returns the largest entry count, or 0 for an empty heatmap
func MaxCount(heatmap map[string]models.HeatmapEntry) int {
	max := 0
	for _, e := range heatmap {
		if e.Count > max {
			max = e.Count
		}
	}
	return max
}

func sortEntries(entries []models.HeatmapEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].RegionID < entries[j].RegionID
	})
}
