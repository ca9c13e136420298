package intelligence

import (
	"context"
	"fmt"
)

// UnavailableAdvisor is installed when no advisor backend is configured.
// Every query errors so the transport layer serves its fallback copy.
type UnavailableAdvisor struct{}

func NewUnavailableAdvisor() *UnavailableAdvisor {
	return &UnavailableAdvisor{}
}

func (a *UnavailableAdvisor) Ask(ctx context.Context, userID, query string) (string, error) {
	return "", fmt.Errorf("advisor backend not configured")
}

func (a *UnavailableAdvisor) ClearContext(ctx context.Context, userID string) error {
	return nil
}
