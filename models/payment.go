package models

import "time"

// PaymentRequest is handed to the payment processor when a booking is confirmed.
type PaymentRequest struct {
	SessionID string  `json:"sessionId"`
	UserID    string  `json:"userId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// Invoice is the processor's receipt for a processed payment.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	PaymentID string    `json:"paymentId,omitempty"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
