package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/bodymap-backend-go/internal/database"
	"github.com/jengzang/bodymap-backend-go/internal/models"
)

func newTestRepo(t *testing.T) *SymptomRepository {
	t.Helper()
	db, err := database.Open(database.Config{
		Path:    filepath.Join(t.TempDir(), "symptoms.db"),
		Migrate: true,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSymptomRepository(db.DB)
}

func sev(v int) *int { return &v }

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in := &models.SymptomRecord{
		ID:          "s1",
		UserID:      "alice",
		RegionID:    "forehead",
		SymptomType: "pain",
		Severity:    sev(6),
		Coordinates: &models.Coordinates{X: 138.25, Y: 22, View: "front"},
		Description: "throbbing",
		CreatedAt:   at("2024-03-01T08:30:00Z"),
	}
	require.NoError(t, repo.Create(ctx, in))

	got, err := repo.GetByID(ctx, "alice", "s1")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestCreateWithoutOptionalFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.SymptomRecord{
		ID: "s2", UserID: "alice", RegionID: "head", SymptomType: "ache",
		CreatedAt: at("2024-03-01T08:30:00Z"),
	}))

	got, err := repo.GetByID(ctx, "alice", "s2")
	require.NoError(t, err)
	assert.Nil(t, got.Severity)
	assert.Nil(t, got.Coordinates)
}

func TestGetIsScopedByUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.SymptomRecord{
		ID: "s1", UserID: "alice", RegionID: "face", SymptomType: "rash",
		CreatedAt: at("2024-03-01T08:30:00Z"),
	}))

	_, err := repo.GetByID(ctx, "bob", "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "bob", "s1"), ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "alice", "s1"))
	_, err = repo.GetByID(ctx, "alice", "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []models.SymptomRecord{
		{ID: "a", UserID: "alice", RegionID: "forehead", SymptomType: "pain", CreatedAt: at("2024-03-01T00:00:00Z")},
		{ID: "b", UserID: "alice", RegionID: "left_knee", SymptomType: "pain", CreatedAt: at("2024-03-02T12:00:00Z")},
		{ID: "c", UserID: "alice", RegionID: "left_knee", SymptomType: "swelling", CreatedAt: at("2024-03-02T23:59:59Z")},
		{ID: "d", UserID: "alice", RegionID: "face", SymptomType: "rash", CreatedAt: at("2024-03-03T00:00:00Z")},
		{ID: "e", UserID: "bob", RegionID: "face", SymptomType: "rash", CreatedAt: at("2024-03-02T10:00:00Z")},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	idsOf := func(recs []models.SymptomRecord) []string {
		out := make([]string, len(recs))
		for i, r := range recs {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.SymptomFilter
		want   []string
	}{
		{"all newest first", models.SymptomFilter{}, []string{"d", "c", "b", "a"}},
		{"date_to includes whole day", models.SymptomFilter{DateTo: "2024-03-02"}, []string{"c", "b", "a"}},
		{"date_from inclusive", models.SymptomFilter{DateFrom: "2024-03-02"}, []string{"d", "c", "b"}},
		{"single day", models.SymptomFilter{DateFrom: "2024-03-02", DateTo: "2024-03-02"}, []string{"c", "b"}},
		{"body part", models.SymptomFilter{BodyPart: "left_knee"}, []string{"c", "b"}},
		{"symptom type", models.SymptomFilter{SymptomType: "pain"}, []string{"b", "a"}},
		{"limit", models.SymptomFilter{Limit: 2}, []string{"d", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, "alice", tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, idsOf(got))
		})
	}

	none, err := repo.List(ctx, "carol", models.SymptomFilter{})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListDefaultLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := at("2024-01-01T00:00:00Z")
	for i := 0; i < DefaultListLimit+5; i++ {
		require.NoError(t, repo.Create(ctx, &models.SymptomRecord{
			ID:          fmt.Sprintf("s%03d", i),
			UserID:      "alice",
			RegionID:    "face",
			SymptomType: "rash",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := repo.List(ctx, "alice", models.SymptomFilter{})
	require.NoError(t, err)
	assert.Len(t, got, DefaultListLimit)
}
