package completion

import (
	"context"

	"carebridge/models"
)

// RecordUpdate carries care-record field changes. Nil fields are left
// untouched.
type RecordUpdate struct {
	BP      *string `json:"bp,omitempty"`
	Temp    *string `json:"temp,omitempty"`
	Pulse   *string `json:"pulse,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// CompletionService drives the provider's task-completion flow.
type CompletionService interface {
	StartCompletion(ctx context.Context, providerID, orderID string) (*models.CompletionSession, error)
	GetCompletion(ctx context.Context, sessionID string) (*models.CompletionSession, error)
	SubmitVerificationCode(ctx context.Context, sessionID, code string) (*models.CompletionSession, error)
	UpdateRecord(ctx context.Context, sessionID string, upd RecordUpdate) (*models.CompletionSession, error)
	AddSitePhotos(ctx context.Context, sessionID string, refs []string) (*models.CompletionSession, error)
	RemoveSitePhoto(ctx context.Context, sessionID string, index int) (*models.CompletionSession, error)
	AdvanceToSign(ctx context.Context, sessionID string) (*models.CompletionSession, error)
	ApplyPointerEvents(ctx context.Context, sessionID string, events []models.PointerEvent) (*models.CompletionSession, error)
	ClearSignature(ctx context.Context, sessionID string) (*models.CompletionSession, error)
	ConfirmSignature(ctx context.Context, sessionID string) (*models.CompletionSession, error)
	Submit(ctx context.Context, sessionID string) (*models.Order, error)
	ReportException(ctx context.Context, sessionID, reason string) error
}
