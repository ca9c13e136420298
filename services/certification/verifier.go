package certification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FaceVerifier runs the liveness check against the identity on file. The
// default implementation simulates the vendor round trip and always passes,
// but callers must treat failure as retryable so a real vendor can be
// dropped in.
type FaceVerifier interface {
	Verify(ctx context.Context, providerID string) error
}

// SimulatedFaceVerifier stands in for the liveness vendor.
type SimulatedFaceVerifier struct {
	Logger *zap.Logger
	Delay  time.Duration
}

// NewSimulatedFaceVerifier returns a verifier with the representative vendor
// round-trip delay.
func NewSimulatedFaceVerifier(logger *zap.Logger) *SimulatedFaceVerifier {
	return &SimulatedFaceVerifier{
		Logger: logger,
		Delay:  2500 * time.Millisecond,
	}
}

func (v *SimulatedFaceVerifier) Verify(ctx context.Context, providerID string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(v.Delay):
	}
	v.Logger.Info("Liveness check passed", zap.String("provider", providerID))
	return nil
}
