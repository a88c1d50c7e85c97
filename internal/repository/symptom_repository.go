package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/bodymap-backend-go/internal/models"
)

// ErrNotFound is returned when a symptom does not exist for the requesting user
var ErrNotFound = errors.New("symptom not found")

// TimeLayout is the UTC layout created_at is stored in; it sorts lexically
const TimeLayout = "2006-01-02T15:04:05.000Z"

// DefaultListLimit caps List when the filter sets no limit
const DefaultListLimit = 500

const symptomColumns = `id, user_id, body_part, symptom_type, severity,
	coord_x, coord_y, coord_view, description, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// SymptomRepository handles database operations for symptoms
type SymptomRepository struct {
	db *sql.DB
}

// NewSymptomRepository creates a new symptom repository
func NewSymptomRepository(db *sql.DB) *SymptomRepository {
	return &SymptomRepository{db: db}
}

// Create inserts a symptom; ID, UserID and CreatedAt must already be set
func (r *SymptomRepository) Create(ctx context.Context, rec *models.SymptomRecord) error {
	var severity sql.NullInt64
	if rec.Severity != nil {
		severity = sql.NullInt64{Int64: int64(*rec.Severity), Valid: true}
	}
	var x, y sql.NullFloat64
	var view sql.NullString
	if c := rec.Coordinates; c != nil {
		x = sql.NullFloat64{Float64: c.X, Valid: true}
		y = sql.NullFloat64{Float64: c.Y, Valid: true}
		view = sql.NullString{String: c.View, Valid: true}
	}

	query := `INSERT INTO symptoms (` + symptomColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.RegionID,
		rec.SymptomType,
		severity,
		x,
		y,
		view,
		rec.Description,
		rec.CreatedAt.UTC().Format(TimeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create symptom: %w", err)
	}
	return nil
}

// GetByID retrieves one of userID's symptoms
func (r *SymptomRepository) GetByID(ctx context.Context, userID, id string) (*models.SymptomRecord, error) {
	query := `SELECT ` + symptomColumns + ` FROM symptoms WHERE user_id = ? AND id = ?`

	rec, err := scanSymptom(r.db.QueryRowContext(ctx, query, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get symptom: %w", err)
	}
	return rec, nil
}

// List returns userID's symptoms matching filter, newest first.
// DateFrom and DateTo are YYYY-MM-DD; DateTo includes the whole day.
func (r *SymptomRepository) List(ctx context.Context, userID string, filter models.SymptomFilter) ([]models.SymptomRecord, error) {
	conditions := []string{"user_id = ?"}
	args := []interface{}{userID}

	if filter.DateFrom != "" {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, filter.DateTo+"T23:59:59.999Z")
	}
	if filter.BodyPart != "" {
		conditions = append(conditions, "body_part = ?")
		args = append(args, filter.BodyPart)
	}
	if filter.SymptomType != "" {
		conditions = append(conditions, "symptom_type = ?")
		args = append(args, filter.SymptomType)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	args = append(args, limit)

	query := `SELECT ` + symptomColumns + ` FROM symptoms WHERE ` +
		strings.Join(conditions, " AND ") +
		` ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query symptoms: %w", err)
	}
	defer rows.Close()

	records := make([]models.SymptomRecord, 0)
	for rows.Next() {
		rec, err := scanSymptom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan symptom: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate symptoms: %w", err)
	}
	return records, nil
}

// Delete removes one of userID's symptoms
func (r *SymptomRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM symptoms WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete symptom: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSymptom(row rowScanner) (*models.SymptomRecord, error) {
	var (
		rec       models.SymptomRecord
		severity  sql.NullInt64
		x, y      sql.NullFloat64
		view      sql.NullString
		createdAt string
	)
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.RegionID,
		&rec.SymptomType,
		&severity,
		&x,
		&y,
		&view,
		&rec.Description,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if severity.Valid {
		s := int(severity.Int64)
		rec.Severity = &s
	}
	if x.Valid && y.Valid && view.Valid {
		rec.Coordinates = &models.Coordinates{X: x.Float64, Y: y.Float64, View: view.String}
	}
	rec.CreatedAt, err = time.Parse(TimeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	return &rec, nil
}
