package models

// SymptomFilter represents filter parameters for querying symptoms
type SymptomFilter struct {
	DateFrom    string `form:"date_from"` // YYYY-MM-DD, inclusive
	DateTo      string `form:"date_to"`   // YYYY-MM-DD, inclusive of the whole day
	BodyPart    string `form:"body_part"` // Exact stored region id
	SymptomType string `form:"symptom_type"`
	Limit       int    `form:"limit"`
}

// BodyMapFilter represents filter parameters for the body map view
type BodyMapFilter struct {
	View     string `form:"view"`      // front, back
	DateFrom string `form:"date_from"` // YYYY-MM-DD
	DateTo   string `form:"date_to"`   // YYYY-MM-DD
}

// BreakdownFilter represents filter parameters for symptom breakdowns
type BreakdownFilter struct {
	By       string `form:"by"`        // type, body_part
	DateFrom string `form:"date_from"` // YYYY-MM-DD
	DateTo   string `form:"date_to"`   // YYYY-MM-DD
}
