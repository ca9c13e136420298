package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carebridge/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentProcessor charges the user for a confirmed booking. Real payment
// capture is out of scope; the default implementation simulates the
// processing delay and always succeeds, but callers must handle failure so a
// real processor can be dropped in.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// SimulatedPaymentProcessor stands in for the payment gateway.
type SimulatedPaymentProcessor struct {
	Logger *zap.Logger
	Delay  time.Duration
}

// NewSimulatedPaymentProcessor returns a processor with the representative
// gateway round-trip delay.
func NewSimulatedPaymentProcessor(logger *zap.Logger) *SimulatedPaymentProcessor {
	return &SimulatedPaymentProcessor{
		Logger: logger,
		Delay:  1500 * time.Millisecond,
	}
}

func (p *SimulatedPaymentProcessor) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.Delay):
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		PaymentID: "pi_" + uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "paid",
		CreatedAt: now,
		UpdatedAt: now,
	}

	p.Logger.Info("Payment successful",
		zap.String("invoice", inv.InvoiceID),
		zap.Float64("amount", inv.Amount))
	return inv, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	return nil
}
