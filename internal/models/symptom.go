package models

import "time"

// Coordinates is an explicit marker position stored with a symptom
type Coordinates struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	View string  `json:"view"` // "front" or "back"
}

// SymptomRecord is a logged symptom as read from the store.
// The body map core only reads these; it never mutates them.
type SymptomRecord struct {
	ID          string       `json:"id" db:"id"`
	UserID      string       `json:"user_id,omitempty" db:"user_id"`
	RegionID    string       `json:"body_part" db:"body_part"`                 // Region id, legacy coarse id, or free text
	SymptomType string       `json:"symptom_type,omitempty" db:"symptom_type"` // e.g. "pain", "rash"
	Severity    *int         `json:"severity" db:"severity"`                   // 1-10, nil when unknown
	Coordinates *Coordinates `json:"body_coordinates,omitempty" db:"-"`
	Description string       `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}

// CreateSymptomRequest is the payload for logging a new symptom
type CreateSymptomRequest struct {
	RegionID    string       `json:"body_part"`
	SymptomType string       `json:"symptom_type"`
	Severity    *int         `json:"severity"`
	Coordinates *Coordinates `json:"body_coordinates"`
	Description string       `json:"description"`
}
