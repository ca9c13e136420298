package completion

import (
	"context"
	"time"

	"carebridge/models"

	"go.uber.org/zap"
)

// CodeVerifier checks the visit verification code against the order. The
// default implementation simulates the round trip and accepts any complete
// code; callers must handle rejection so a real check can be dropped in.
type CodeVerifier interface {
	VerifyCode(ctx context.Context, orderID, code string) error
}

// RecordSubmitter files the finished care record with the back office. The
// default implementation simulates the round trip and always succeeds, but
// failure must leave the flow retryable.
type RecordSubmitter interface {
	SubmitRecord(ctx context.Context, orderID string, record models.NursingRecord) error
}

// SimulatedCodeVerifier stands in for the order-service code check.
type SimulatedCodeVerifier struct {
	Logger *zap.Logger
	Delay  time.Duration
}

func NewSimulatedCodeVerifier(logger *zap.Logger) *SimulatedCodeVerifier {
	return &SimulatedCodeVerifier{
		Logger: logger,
		Delay:  800 * time.Millisecond,
	}
}

func (v *SimulatedCodeVerifier) VerifyCode(ctx context.Context, orderID, code string) error {
	if !CanVerify(code) {
		return ErrCodeIncomplete
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(v.Delay):
	}
	v.Logger.Info("Verification code accepted", zap.String("order", orderID))
	return nil
}

// SimulatedRecordSubmitter stands in for the back-office filing call.
type SimulatedRecordSubmitter struct {
	Logger *zap.Logger
	Delay  time.Duration
}

func NewSimulatedRecordSubmitter(logger *zap.Logger) *SimulatedRecordSubmitter {
	return &SimulatedRecordSubmitter{
		Logger: logger,
		Delay:  1500 * time.Millisecond,
	}
}

func (s *SimulatedRecordSubmitter) SubmitRecord(ctx context.Context, orderID string, record models.NursingRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Delay):
	}
	s.Logger.Info("Care record filed", zap.String("order", orderID), zap.String("record", record.ID))
	return nil
}
