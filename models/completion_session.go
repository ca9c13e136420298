package models

import "time"

// CompletionStep is the current stage of a task-completion flow.
type CompletionStep string

const (
	CompletionVerify  CompletionStep = "VERIFY"
	CompletionRecord  CompletionStep = "RECORD"
	CompletionSign    CompletionStep = "SIGN"
	CompletionPreview CompletionStep = "PREVIEW"
)

// Point is one sampled signature coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one contiguous pen-down sub-path of a signature.
type Stroke struct {
	Points []Point `json:"points"`
}

// TaskCompletionDraft is the in-progress data of one completion flow.
// Site photos are capped at five; the signature is a sequence of strokes
// rendered to a raster when the provider confirms it.
type TaskCompletionDraft struct {
	VerificationCode string   `json:"verificationCode,omitempty"`
	Vitals           Vitals   `json:"vitals"`
	Summary          string   `json:"summary,omitempty"`
	SitePhotos       []string `json:"sitePhotos,omitempty"`
	Strokes          []Stroke `json:"strokes,omitempty"`
	Drawing          bool     `json:"drawing,omitempty"` // pen currently down
	SignatureRef     string   `json:"signatureRef,omitempty"`
	Submitting       bool     `json:"submitting,omitempty"`
}

// CompletionSession holds one task-completion flow run by a provider.
type CompletionSession struct {
	SessionID    string              `json:"sessionId"`
	ProviderID   string              `json:"providerId"`
	OrderID      string              `json:"orderId"`
	CustomerName string              `json:"customerName"`
	Step         CompletionStep      `json:"step"`
	Draft        TaskCompletionDraft `json:"draft"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// PointerEvent is one raw capture-surface input sample.
type PointerEvent struct {
	Type string  `json:"type"` // down, move, up
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}
