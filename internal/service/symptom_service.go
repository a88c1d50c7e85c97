package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/models"
)

var (
	// ErrInvalidSymptom is returned when a create request fails validation
	ErrInvalidSymptom = errors.New("invalid symptom")
	// ErrInvalidFilter is returned for malformed query parameters
	ErrInvalidFilter = errors.New("invalid filter")
)

const (
	dateLayout   = "2006-01-02"
	maxListLimit = 1000
)

// SymptomStore persists symptoms scoped by owner
type SymptomStore interface {
	Create(ctx context.Context, rec *models.SymptomRecord) error
	GetByID(ctx context.Context, userID, id string) (*models.SymptomRecord, error)
	List(ctx context.Context, userID string, filter models.SymptomFilter) ([]models.SymptomRecord, error)
	Delete(ctx context.Context, userID, id string) error
}

// SymptomService handles business logic for logging symptoms
type SymptomService struct {
	store SymptomStore
	now   func() time.Time
	newID func() string
}

// NewSymptomService creates a new symptom service
func NewSymptomService(store SymptomStore) *SymptomService {
	return &SymptomService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create validates req and stores it as a new symptom owned by userID
func (s *SymptomService) Create(ctx context.Context, userID string, req models.CreateSymptomRequest) (*models.SymptomRecord, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	rec := &models.SymptomRecord{
		ID:          s.newID(),
		UserID:      userID,
		RegionID:    req.RegionID,
		SymptomType: req.SymptomType,
		Severity:    req.Severity,
		Coordinates: req.Coordinates,
		Description: req.Description,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create symptom: %w", err)
	}
	return rec, nil
}

// Get returns one of userID's symptoms
func (s *SymptomService) Get(ctx context.Context, userID, id string) (*models.SymptomRecord, error) {
	rec, err := s.store.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get symptom: %w", err)
	}
	return rec, nil
}

// List returns userID's symptoms matching filter, newest first
func (s *SymptomService) List(ctx context.Context, userID string, filter models.SymptomFilter) ([]models.SymptomRecord, error) {
	if err := validateDates(filter.DateFrom, filter.DateTo); err != nil {
		return nil, err
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidFilter)
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	records, err := s.store.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list symptoms: %w", err)
	}
	return records, nil
}

// Delete removes one of userID's symptoms
func (s *SymptomService) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete symptom: %w", err)
	}
	return nil
}

func validateCreate(req *models.CreateSymptomRequest) error {
	req.RegionID = strings.TrimSpace(req.RegionID)
	req.SymptomType = strings.TrimSpace(req.SymptomType)

	if req.RegionID == "" {
		return fmt.Errorf("%w: body_part is required", ErrInvalidSymptom)
	}
	if req.Severity != nil && (*req.Severity < 1 || *req.Severity > 10) {
		return fmt.Errorf("%w: severity must be between 1 and 10, got %d", ErrInvalidSymptom, *req.Severity)
	}
	if c := req.Coordinates; c != nil {
		view, ok := bodymap.ParseView(c.View)
		if !ok {
			return fmt.Errorf("%w: body_coordinates.view must be front or back, got %q", ErrInvalidSymptom, c.View)
		}
		c.View = string(view)
	}
	return nil
}

func validateDates(from, to string) error {
	var fromT, toT time.Time
	var err error
	if from != "" {
		if fromT, err = time.Parse(dateLayout, from); err != nil {
			return fmt.Errorf("%w: date_from must be YYYY-MM-DD", ErrInvalidFilter)
		}
	}
	if to != "" {
		if toT, err = time.Parse(dateLayout, to); err != nil {
			return fmt.Errorf("%w: date_to must be YYYY-MM-DD", ErrInvalidFilter)
		}
	}
	if from != "" && to != "" && toT.Before(fromT) {
		return fmt.Errorf("%w: date_to is before date_from", ErrInvalidFilter)
	}
	return nil
}
