package booking

import (
	"context"
	"testing"
	"time"

	"carebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulatedPaymentProcessor(t *testing.T) {
	p := &SimulatedPaymentProcessor{Logger: zap.NewNop(), Delay: time.Millisecond}

	inv, err := p.ProcessPayment(context.Background(), models.PaymentRequest{
		SessionID: "s1",
		UserID:    "u1",
		Amount:    69,
		Currency:  "CNY",
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", inv.Status)
	assert.Equal(t, 69.0, inv.Amount)
	assert.NotEmpty(t, inv.InvoiceID)
	assert.NotEmpty(t, inv.PaymentID)
}

func TestSimulatedPaymentProcessorRejectsBadRequest(t *testing.T) {
	p := &SimulatedPaymentProcessor{Logger: zap.NewNop(), Delay: time.Millisecond}

	_, err := p.ProcessPayment(context.Background(), models.PaymentRequest{UserID: "u1"})
	assert.Error(t, err)

	_, err = p.ProcessPayment(context.Background(), models.PaymentRequest{Amount: 10})
	assert.Error(t, err)
}

func TestSimulatedPaymentProcessorHonorsContext(t *testing.T) {
	p := &SimulatedPaymentProcessor{Logger: zap.NewNop(), Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.ProcessPayment(ctx, models.PaymentRequest{UserID: "u1", Amount: 10})
	assert.ErrorIs(t, err, context.Canceled)
}
