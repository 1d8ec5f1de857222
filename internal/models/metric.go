package models

import "time"

// UxMetric is one coarse client-side timing sample. Unrelated to Submission;
// both are write-only append logs from this service's point of view.
type UxMetric struct {
	SessionID    string    `json:"session_id"`
	Page         string    `json:"page"`
	TTFCMs       float64   `json:"ttfc_ms"`
	FirstFocusMs *float64  `json:"first_focus_ms,omitempty"`
	DeviceType   string    `json:"device_type"`
	Referrer     *string   `json:"referrer,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MetricRequest is the POST /metrics payload. ttfc_ms is a pointer so a
// missing field is distinguishable from an explicit zero.
type MetricRequest struct {
	SessionID    string   `json:"session_id"`
	TTFCMs       *float64 `json:"ttfc_ms"`
	Page         string   `json:"page,omitempty"`
	FirstFocusMs *float64 `json:"first_focus_ms,omitempty"`
	DeviceType   string   `json:"device_type,omitempty"`
	Referrer     *string  `json:"referrer,omitempty"`
}
