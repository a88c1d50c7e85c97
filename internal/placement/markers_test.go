package placement

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/spatial"
)

func sev(v int) *int { return &v }

func TestPlaceUsesStoredCoordinatesForSameView(t *testing.T) {
	records := []models.SymptomRecord{{
		ID:          "s1",
		RegionID:    "forehead",
		Severity:    sev(2),
		Coordinates: &models.Coordinates{X: 133.5, Y: 21, View: "front"},
	}}

	markers := Place(records, bodymap.Front)
	require.Len(t, markers, 1)
	assert.Equal(t, 133.5, markers[0].X)
	assert.Equal(t, 21.0, markers[0].Y)
	assert.False(t, markers[0].Fallback)
	assert.Equal(t, "#22c55e", markers[0].Color)
	assert.Equal(t, "s1", markers[0].Symptom.ID)
}

func TestPlaceFallbackSpiral(t *testing.T) {
	forehead, _ := bodymap.RegionByID("forehead")
	records := []models.SymptomRecord{
		{ID: "a", RegionID: "forehead"},
		{ID: "b", RegionID: "forehead", Severity: sev(9)},
		{ID: "c", RegionID: "forehead", Coordinates: &models.Coordinates{X: 1, Y: 1, View: "back"}},
	}

	markers := Place(records, bodymap.Front)
	require.Len(t, markers, 3)

	for i, m := range markers {
		want := forehead.Anchor.Add(spatial.GoldenSpiralOffset(i))
		assert.True(t, m.Fallback, m.Symptom.ID)
		assert.InDelta(t, want.X, m.X, 1e-9, m.Symptom.ID)
		assert.InDelta(t, want.Y, m.Y, 1e-9, m.Symptom.ID)
	}
	assert.InDelta(t, 144.0, markers[0].X, 1e-9)
	assert.InDelta(t, 24.0, markers[0].Y, 1e-9)

	assert.Equal(t, "#eab308", markers[0].Color, "missing severity is moderate")
	assert.Equal(t, "#ef4444", markers[1].Color)
}

func TestPlaceOrdinalCountsOnlyFallbacks(t *testing.T) {
	face, _ := bodymap.RegionByID("face")
	records := []models.SymptomRecord{
		{ID: "stored", RegionID: "face", Coordinates: &models.Coordinates{X: 140, Y: 50, View: "front"}},
		{ID: "first", RegionID: "face"},
	}

	markers := Place(records, bodymap.Front)
	require.Len(t, markers, 2)
	assert.False(t, markers[0].Fallback)
	assert.Equal(t, FallbackPosition(face.Anchor, 0), r2.Point{X: markers[1].X, Y: markers[1].Y})
}

func TestPlaceOrdinalsPerRegion(t *testing.T) {
	face, _ := bodymap.RegionByID("face")
	forehead, _ := bodymap.RegionByID("forehead")
	records := []models.SymptomRecord{
		{RegionID: "face"},
		{RegionID: "forehead"},
		{RegionID: "face"},
		{RegionID: "crown"}, // back view, dropped
	}

	markers := Place(records, bodymap.Front)
	require.Len(t, markers, 3)
	assert.Equal(t, FallbackPosition(face.Anchor, 0), r2.Point{X: markers[0].X, Y: markers[0].Y})
	assert.Equal(t, FallbackPosition(forehead.Anchor, 0), r2.Point{X: markers[1].X, Y: markers[1].Y})
	assert.Equal(t, FallbackPosition(face.Anchor, 1), r2.Point{X: markers[2].X, Y: markers[2].Y})
}

func TestPlaceExcludesUndrawableRecords(t *testing.T) {
	records := []models.SymptomRecord{
		{ID: "empty"},
		{ID: "unknown", RegionID: "tummy"},
		{ID: "coarse", RegionID: "head"},
		{ID: "other-view", RegionID: "left_upper_back"},
		{ID: "other-view-coords", RegionID: "left_upper_back", Coordinates: &models.Coordinates{X: 124, Y: 122, View: "front"}},
		{ID: "kept", RegionID: "left_knee"},
	}

	markers := Place(records, bodymap.Front)
	require.Len(t, markers, 1)
	assert.Equal(t, "kept", markers[0].Symptom.ID)

	back := Place(records, bodymap.Back)
	require.Len(t, back, 2)
	assert.Equal(t, "other-view", back[0].Symptom.ID)
	assert.True(t, back[1].Fallback, "front coordinates are ignored on the back view")
}

func TestPlaceEmpty(t *testing.T) {
	markers := Place(nil, bodymap.Front)
	assert.NotNil(t, markers)
	assert.Empty(t, markers)
}

func TestPlaceDeterministic(t *testing.T) {
	records := []models.SymptomRecord{
		{RegionID: "left_knee"}, {RegionID: "left_knee"}, {RegionID: "right_shin", Severity: sev(6)},
	}
	assert.Equal(t, Place(records, bodymap.Front), Place(records, bodymap.Front))
}
