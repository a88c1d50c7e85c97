package heatmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/bodymap-backend-go/internal/models"
)

func typed(region, kind string, severity *int) models.SymptomRecord {
	return models.SymptomRecord{RegionID: region, SymptomType: kind, Severity: severity}
}

func TestBreakdownByType(t *testing.T) {
	records := []models.SymptomRecord{
		typed("forehead", "pain", sev(4)),
		typed("left_knee", "pain", sev(8)),
		typed("left_knee", "swelling", nil),
		typed("face", "", sev(2)),
	}

	b := Breakdown(records, BySymptomType)
	want := models.SymptomBreakdown{
		GroupBy: "type",
		Rows: []models.BreakdownRow{
			{Key: "pain", Label: "pain", Count: 2, AvgSeverity: 6, MaxSeverity: 8},
			{Key: "swelling", Label: "swelling", Count: 1, AvgSeverity: 5, MaxSeverity: 5},
		},
		TotalCount:  4,
		AvgSeverity: 19.0 / 4,
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestBreakdownByBodyPartLabels(t *testing.T) {
	records := []models.SymptomRecord{
		typed("left_arm", "ache", sev(3)),
		typed("forehead", "ache", sev(3)),
		typed("forehead", "ache", sev(5)),
		typed("tummy", "ache", sev(7)),
	}

	b := Breakdown(records, ByBodyPart)
	require.Len(t, b.Rows, 3)
	assert.Equal(t, "forehead", b.Rows[0].Key)
	assert.Equal(t, "Forehead", b.Rows[0].Label)
	assert.Equal(t, "left_arm", b.Rows[1].Key)
	assert.Equal(t, "Left Arm", b.Rows[1].Label)
	assert.Equal(t, "tummy", b.Rows[2].Label)
}

func TestBreakdownEmpty(t *testing.T) {
	b := Breakdown(nil, ByBodyPart)
	assert.NotNil(t, b.Rows)
	assert.Empty(t, b.Rows)
	assert.Zero(t, b.TotalCount)
	assert.Zero(t, b.AvgSeverity)
}

func TestGroupingByName(t *testing.T) {
	g, ok := GroupingByName("body_part")
	assert.True(t, ok)
	assert.Equal(t, "body_part", g.Name)

	g, ok = GroupingByName("type")
	assert.True(t, ok)
	assert.Equal(t, "type", g.Name)

	_, ok = GroupingByName("region")
	assert.False(t, ok)
}
