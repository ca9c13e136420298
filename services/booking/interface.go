package booking

import (
	"context"

	"carebridge/models"
)

// DraftUpdate carries one or more draft field changes. Nil fields are left
// untouched.
type DraftUpdate struct {
	PatientID         *string `json:"patientId,omitempty"`
	AddressID         *string `json:"addressId,omitempty"`
	CouponID          *string `json:"couponId,omitempty"`
	SlotDate          *string `json:"slotDate,omitempty"`
	SlotTime          *string `json:"slotTime,omitempty"`
	AddProofImage     *string `json:"addProofImage,omitempty"`
	RemoveProofIndex  *int    `json:"removeProofIndex,omitempty"`
	AgreementAccepted *bool   `json:"agreementAccepted,omitempty"`
}

// FlowView is a booking session plus the derived values the client renders.
type FlowView struct {
	Session          models.BookingSession `json:"session"`
	SlotGrid         models.SlotGrid       `json:"slotGrid"`
	PayableTotal     float64               `json:"payableTotal"`
	PaymentRemaining int                   `json:"paymentRemaining,omitempty"`
	PaymentClock     string                `json:"paymentClock,omitempty"` // mm:ss
}

// BookingFlowService drives the stateful booking flow.
type BookingFlowService interface {
	InitiateFlow(ctx context.Context, userID, serviceID, nurseID string) (*FlowView, error)
	GetFlow(ctx context.Context, sessionID string) (*FlowView, error)
	UpdateDraft(ctx context.Context, sessionID string, upd DraftUpdate) (*FlowView, error)
	RequestPayment(ctx context.Context, sessionID string) (*FlowView, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*FlowView, error)
	CancelPayment(ctx context.Context, sessionID string) (*FlowView, error)
	CancelFlow(ctx context.Context, sessionID string) error
}
