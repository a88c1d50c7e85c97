package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/heatmap"
	"github.com/jengzang/bodymap-backend-go/internal/metrics"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/placement"
)

// BodyMapService builds heatmaps, markers and breakdowns from stored symptoms
type BodyMapService struct {
	store      SymptomStore
	cache      *heatmap.Cache
	metrics    *metrics.Metrics
	logger     *zap.Logger
	fetchLimit int
}

// BodyMapOptions configures a BodyMapService; zero values pick defaults
type BodyMapOptions struct {
	Cache      *heatmap.Cache
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
	FetchLimit int
}

// NewBodyMapService creates a new body map service
func NewBodyMapService(store SymptomStore, opts BodyMapOptions) *BodyMapService {
	if opts.Cache == nil {
		opts.Cache = heatmap.NewCache(heatmap.DefaultCacheSize)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.FetchLimit <= 0 {
		opts.FetchLimit = 500
	}
	return &BodyMapService{
		store:      store,
		cache:      opts.Cache,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		fetchLimit: opts.FetchLimit,
	}
}

// BodyMap returns the heatmap and markers of userID's symptoms for one view.
// An empty view means front.
func (s *BodyMapService) BodyMap(ctx context.Context, userID string, filter models.BodyMapFilter) (*models.BodyMapResponse, error) {
	view := bodymap.Front
	if filter.View != "" {
		v, ok := bodymap.ParseView(filter.View)
		if !ok {
			return nil, fmt.Errorf("%w: view must be front or back, got %q", ErrInvalidFilter, filter.View)
		}
		view = v
	}

	records, err := s.load(ctx, userID, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	hm, hit := s.cache.Compute(records)
	regions, unmapped := heatmap.SplitByView(hm, view)
	markers := placement.Place(records, view)
	s.metrics.ObserveHeatmap(hit, time.Since(start))

	fallback := 0
	for _, m := range markers {
		if m.Fallback {
			fallback++
		}
	}
	s.metrics.ObserveMarkers(len(markers)-fallback, fallback)

	s.logger.Debug("body map built",
		zap.String("user_id", userID),
		zap.String("view", string(view)),
		zap.Int("symptoms", len(records)),
		zap.Int("regions", len(hm)),
		zap.Int("markers", len(markers)),
		zap.Bool("cache_hit", hit),
	)

	return &models.BodyMapResponse{
		View:         string(view),
		Regions:      regions,
		Unmapped:     unmapped,
		Markers:      markers,
		SymptomCount: len(records),
		RegionCount:  len(hm),
		MaxCount:     heatmap.MaxCount(hm),
	}, nil
}

// RegionSymptoms returns userID's symptoms that belong to regionID when it
// is selected on the map, newest first
func (s *BodyMapService) RegionSymptoms(ctx context.Context, userID, regionID string, filter models.BodyMapFilter) ([]models.SymptomRecord, error) {
	regionID = strings.TrimSpace(regionID)
	if regionID == "" {
		return nil, fmt.Errorf("%w: region id is required", ErrInvalidFilter)
	}

	records, err := s.load(ctx, userID, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, err
	}

	matched := make([]models.SymptomRecord, 0)
	for _, r := range records {
		if bodymap.MatchesRegion(r.RegionID, regionID) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Breakdown groups userID's symptoms by symptom type or body part
func (s *BodyMapService) Breakdown(ctx context.Context, userID string, filter models.BreakdownFilter) (*models.SymptomBreakdown, error) {
	by := filter.By
	if by == "" {
		by = heatmap.BySymptomType.Name
	}
	g, ok := heatmap.GroupingByName(by)
	if !ok {
		return nil, fmt.Errorf("%w: by must be type or body_part, got %q", ErrInvalidFilter, filter.By)
	}

	records, err := s.load(ctx, userID, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, err
	}

	b := heatmap.Breakdown(records, g)
	return &b, nil
}

func (s *BodyMapService) load(ctx context.Context, userID, from, to string) ([]models.SymptomRecord, error) {
	if err := validateDates(from, to); err != nil {
		return nil, err
	}
	records, err := s.store.List(ctx, userID, models.SymptomFilter{
		DateFrom: from,
		DateTo:   to,
		Limit:    s.fetchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load symptoms: %w", err)
	}
	return records, nil
}
