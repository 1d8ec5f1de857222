package models

import "time"

// AllowedCategories is the fixed set a caller may self-select. Labels are kept
// in Portuguese because they are stored and displayed verbatim.
var AllowedCategories = []string{"Alimentação", "Saúde", "Serviços", "Mobilidade", "Lazer"}

// Submission is one anonymous "missing thing" report. Rows are append-only:
// nothing in the service updates or deletes them after insert.
type Submission struct {
	ID           string    `json:"id"`
	City         string    `json:"city"`
	Category     *string   `json:"category,omitempty"`
	TextOriginal string    `json:"text_original"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	// IPHash pseudonymizes the origin address for rate limiting only.
	// It is never returned to callers.
	IPHash *string `json:"-"`
}

// SubmissionRequest is the POST /submissions payload.
// category and comment are optional; text_original is validated downstream.
// TextOriginal binds loosely so a non-string value reaches the validator
// (and its user-facing message) instead of failing generic JSON binding.
type SubmissionRequest struct {
	TextOriginal any     `json:"text_original"`
	Category     *string `json:"category,omitempty"`
	Comment      *string `json:"comment,omitempty"`
}

// SubmissionResponse is returned by POST /submissions on both success and
// failure; Error is populated only when OK is false.
type SubmissionResponse struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}
