package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/bodymap-backend-go/internal/heatmap"
	"github.com/jengzang/bodymap-backend-go/internal/metrics"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/repository"
)

// memStore is an in-memory SymptomStore
type memStore struct {
	mu      sync.Mutex
	records []models.SymptomRecord
	lists   []models.SymptomFilter
	failErr error
}

func (s *memStore) Create(_ context.Context, rec *models.SymptomRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	s.records = append(s.records, *rec)
	return nil
}

func (s *memStore) GetByID(_ context.Context, userID, id string) (*models.SymptomRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.UserID == userID && r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) List(_ context.Context, userID string, filter models.SymptomFilter) ([]models.SymptomRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = append(s.lists, filter)
	if s.failErr != nil {
		return nil, s.failErr
	}
	out := make([]models.SymptomRecord, 0)
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *memStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.UserID == userID && r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func sev(v int) *int { return &v }

func newSymptomService(store SymptomStore) *SymptomService {
	s := NewSymptomService(store)
	s.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.FixedZone("CEST", 2*3600)) }
	s.newID = func() string { return "fixed-id" }
	return s
}

func TestCreateSymptom(t *testing.T) {
	store := &memStore{}
	svc := newSymptomService(store)

	rec, err := svc.Create(context.Background(), "alice", models.CreateSymptomRequest{
		RegionID:    "  forehead ",
		SymptomType: "pain",
		Severity:    sev(7),
		Coordinates: &models.Coordinates{X: 140, Y: 20, View: "Front"},
	})
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", rec.ID)
	assert.Equal(t, "alice", rec.UserID)
	assert.Equal(t, "forehead", rec.RegionID)
	assert.Equal(t, "front", rec.Coordinates.View)
	assert.Equal(t, time.Date(2024, 5, 6, 5, 8, 9, 123000000, time.UTC), rec.CreatedAt)
	require.Len(t, store.records, 1)
}

func TestCreateSymptomValidation(t *testing.T) {
	svc := newSymptomService(&memStore{})
	tests := []struct {
		name string
		req  models.CreateSymptomRequest
	}{
		{"missing region", models.CreateSymptomRequest{SymptomType: "pain"}},
		{"blank region", models.CreateSymptomRequest{RegionID: "   "}},
		{"severity too low", models.CreateSymptomRequest{RegionID: "face", Severity: sev(0)}},
		{"severity too high", models.CreateSymptomRequest{RegionID: "face", Severity: sev(11)}},
		{"bad view", models.CreateSymptomRequest{RegionID: "face", Coordinates: &models.Coordinates{View: "side"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "alice", tt.req)
			assert.ErrorIs(t, err, ErrInvalidSymptom)
		})
	}
}

func TestCreateSymptomStoreError(t *testing.T) {
	boom := errors.New("disk full")
	svc := newSymptomService(&memStore{failErr: boom})
	_, err := svc.Create(context.Background(), "alice", models.CreateSymptomRequest{RegionID: "face"})
	assert.ErrorIs(t, err, boom)
}

func TestGetAndDeleteSymptom(t *testing.T) {
	store := &memStore{records: []models.SymptomRecord{{ID: "s1", UserID: "alice", RegionID: "face"}}}
	svc := newSymptomService(store)
	ctx := context.Background()

	rec, err := svc.Get(ctx, "alice", "s1")
	require.NoError(t, err)
	assert.Equal(t, "face", rec.RegionID)

	_, err = svc.Get(ctx, "bob", "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "alice", "s1"))
	assert.ErrorIs(t, svc.Delete(ctx, "alice", "s1"), repository.ErrNotFound)
}

func TestListSymptomsValidation(t *testing.T) {
	store := &memStore{}
	svc := newSymptomService(store)
	ctx := context.Background()

	for _, f := range []models.SymptomFilter{
		{DateFrom: "03/01/2024"},
		{DateTo: "2024-13-01"},
		{DateFrom: "2024-03-02", DateTo: "2024-03-01"},
		{Limit: -1},
	} {
		_, err := svc.List(ctx, "alice", f)
		assert.ErrorIs(t, err, ErrInvalidFilter, "%+v", f)
	}

	_, err := svc.List(ctx, "alice", models.SymptomFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, store.lists[len(store.lists)-1].Limit)
}

func bodyMapFixture() *memStore {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &memStore{records: []models.SymptomRecord{
		{ID: "1", UserID: "alice", RegionID: "forehead", SymptomType: "pain", Severity: sev(2), CreatedAt: base},
		{ID: "2", UserID: "alice", RegionID: "forehead", SymptomType: "pain", Severity: sev(6), CreatedAt: base.Add(time.Hour)},
		{ID: "3", UserID: "alice", RegionID: "head", SymptomType: "ache", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", UserID: "alice", RegionID: "left_upper_back", SymptomType: "ache", Severity: sev(9), CreatedAt: base.Add(3 * time.Hour)},
		{ID: "5", UserID: "alice", RegionID: "tummy", SymptomType: "cramp", Severity: sev(4), CreatedAt: base.Add(4 * time.Hour),
			Coordinates: &models.Coordinates{X: 140, Y: 200, View: "front"}},
		{ID: "6", UserID: "bob", RegionID: "forehead", Severity: sev(10), CreatedAt: base},
	}}
}

func TestBodyMap(t *testing.T) {
	store := bodyMapFixture()
	m := metrics.New(false)
	svc := NewBodyMapService(store, BodyMapOptions{Metrics: m})

	resp, err := svc.BodyMap(context.Background(), "alice", models.BodyMapFilter{DateFrom: "2024-03-01"})
	require.NoError(t, err)

	assert.Equal(t, "front", resp.View)
	assert.Equal(t, 5, resp.SymptomCount)
	assert.Equal(t, 4, resp.RegionCount)
	assert.Equal(t, 2, resp.MaxCount)

	require.Len(t, resp.Regions, 1)
	assert.Equal(t, "forehead", resp.Regions[0].RegionID)
	assert.Equal(t, 4.0, resp.Regions[0].AvgSeverity)

	require.Len(t, resp.Unmapped, 2)
	assert.Equal(t, "head", resp.Unmapped[0].RegionID)
	assert.Equal(t, "tummy", resp.Unmapped[1].RegionID)

	// Only catalog regions of the view get markers; tummy has coordinates but no region.
	require.Len(t, resp.Markers, 2)
	for _, mk := range resp.Markers {
		assert.Equal(t, "forehead", mk.Symptom.RegionID)
		assert.True(t, mk.Fallback)
	}

	assert.Equal(t, "2024-03-01", store.lists[0].DateFrom)
	assert.Equal(t, 500, store.lists[0].Limit)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Heatmaps.WithLabelValues("miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MarkersPlaced.WithLabelValues("fallback")))

	_, err = svc.BodyMap(context.Background(), "alice", models.BodyMapFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Heatmaps.WithLabelValues("hit")))
}

func TestBodyMapBackView(t *testing.T) {
	svc := NewBodyMapService(bodyMapFixture(), BodyMapOptions{Cache: heatmap.NewCache(2)})

	resp, err := svc.BodyMap(context.Background(), "alice", models.BodyMapFilter{View: "BACK"})
	require.NoError(t, err)
	assert.Equal(t, "back", resp.View)
	require.Len(t, resp.Regions, 1)
	assert.Equal(t, "left_upper_back", resp.Regions[0].RegionID)
	assert.Equal(t, "#ef4444", resp.Regions[0].FillColor)
	require.Len(t, resp.Markers, 1)
	assert.Equal(t, "4", resp.Markers[0].Symptom.ID)
}

func TestBodyMapEmpty(t *testing.T) {
	svc := NewBodyMapService(&memStore{}, BodyMapOptions{})
	resp, err := svc.BodyMap(context.Background(), "nobody", models.BodyMapFilter{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Regions)
	assert.NotNil(t, resp.Unmapped)
	assert.NotNil(t, resp.Markers)
	assert.Zero(t, resp.SymptomCount)
	assert.Zero(t, resp.MaxCount)
}

func TestBodyMapErrors(t *testing.T) {
	svc := NewBodyMapService(&memStore{}, BodyMapOptions{})
	_, err := svc.BodyMap(context.Background(), "alice", models.BodyMapFilter{View: "side"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.BodyMap(context.Background(), "alice", models.BodyMapFilter{DateTo: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	boom := errors.New("db down")
	_, err = NewBodyMapService(&memStore{failErr: boom}, BodyMapOptions{}).
		BodyMap(context.Background(), "alice", models.BodyMapFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestRegionSymptoms(t *testing.T) {
	svc := NewBodyMapService(bodyMapFixture(), BodyMapOptions{})
	ctx := context.Background()

	ids := func(recs []models.SymptomRecord) []string {
		out := make([]string, len(recs))
		for i, r := range recs {
			out[i] = r.ID
		}
		return out
	}

	got, err := svc.RegionSymptoms(ctx, "alice", "head", models.BodyMapFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, ids(got))

	got, err = svc.RegionSymptoms(ctx, "alice", "forehead", models.BodyMapFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, ids(got), "coarse head records roll up to every head region")

	got, err = svc.RegionSymptoms(ctx, "alice", "face", models.BodyMapFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(got))

	_, err = svc.RegionSymptoms(ctx, "alice", " ", models.BodyMapFilter{})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestBreakdown(t *testing.T) {
	svc := NewBodyMapService(bodyMapFixture(), BodyMapOptions{})
	ctx := context.Background()

	b, err := svc.Breakdown(ctx, "alice", models.BreakdownFilter{})
	require.NoError(t, err)
	assert.Equal(t, "type", b.GroupBy)
	require.Len(t, b.Rows, 3)
	assert.Equal(t, "ache", b.Rows[0].Key)
	assert.Equal(t, 5, b.TotalCount)

	b, err = svc.Breakdown(ctx, "alice", models.BreakdownFilter{By: "body_part"})
	require.NoError(t, err)
	assert.Equal(t, "Forehead", b.Rows[0].Label)

	_, err = svc.Breakdown(ctx, "alice", models.BreakdownFilter{By: "colour"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
