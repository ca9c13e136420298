package intelligence

import "context"

// AdvisorService answers free-text care consultation queries using the
// service catalog as grounding. Failures surface as errors; the fallback
// copy is the transport layer's concern.
type AdvisorService interface {
	Ask(ctx context.Context, userID, query string) (string, error)
	ClearContext(ctx context.Context, userID string) error
}
