package heatmap

import (
	"sort"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/severity"
	"github.com/jengzang/bodymap-backend-go/internal/stats"
)

// Grouping selects the key records are grouped by in a breakdown
type Grouping struct {
	Name  string
	Key   func(models.SymptomRecord) string
	Label func(key string) string
}

var (
	// ByBodyPart groups by the stored region id, labelled from the catalog
	ByBodyPart = Grouping{
		Name:  "body_part",
		Key:   func(r models.SymptomRecord) string { return r.RegionID },
		Label: bodymap.DisplayLabel,
	}

	// BySymptomType groups by the free-text symptom type
	BySymptomType = Grouping{
		Name: "type",
		Key:  func(r models.SymptomRecord) string { return r.SymptomType },
	}
)

// GroupingByName returns the grouping called name ("type" or "body_part")
func GroupingByName(name string) (Grouping, bool) {
	switch name {
	case ByBodyPart.Name:
		return ByBodyPart, true
	case BySymptomType.Name:
		return BySymptomType, true
	}
	return Grouping{}, false
}

// Breakdown counts records per group with their mean and max severity.
// Records with an empty key are counted in the totals only. Rows are ordered
// by count descending, then key ascending.
func Breakdown(records []models.SymptomRecord, g Grouping) models.SymptomBreakdown {
	groups := stats.NewGrouped()
	var all stats.Accumulator

	for _, r := range records {
		sev := severity.Effective(r.Severity)
		all.Add(sev)
		if key := g.Key(r); key != "" {
			groups.Add(key, sev)
		}
	}

	rows := make([]models.BreakdownRow, 0, groups.Len())
	for _, key := range groups.Keys() {
		s, _ := groups.Summary(key)
		label := key
		if g.Label != nil {
			label = g.Label(key)
		}
		rows = append(rows, models.BreakdownRow{
			Key:         key,
			Label:       label,
			Count:       s.Count,
			AvgSeverity: s.Mean,
			MaxSeverity: int(s.Max),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Key < rows[j].Key
	})

	total := all.Summary()
	return models.SymptomBreakdown{
		GroupBy:     g.Name,
		Rows:        rows,
		TotalCount:  total.Count,
		AvgSeverity: total.Mean,
	}
}
