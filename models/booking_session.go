package models

import "time"

// BookingStep is the current stage of a booking flow.
type BookingStep string

const (
	BookingCollect        BookingStep = "COLLECT"
	BookingPaymentConfirm BookingStep = "PAYMENT_CONFIRM"
	BookingSubmitting     BookingStep = "SUBMITTING"
	BookingDone           BookingStep = "DONE"
)

// BookingDraft is the in-progress data of one booking flow instance.
// Payment cannot be initiated until patient, address, time slot, at least
// one proof image, and the agreement flag are all set.
type BookingDraft struct {
	PatientID         string   `json:"patientId,omitempty"`
	AddressID         string   `json:"addressId,omitempty"`
	CouponID          string   `json:"couponId,omitempty"`
	TimeSlot          string   `json:"timeSlot,omitempty"` // composite "dateLabel HH:MM"
	ProofImages       []string `json:"proofImages,omitempty"`
	AgreementAccepted bool     `json:"agreementAccepted"`
}

// PaymentState exists only while the flow sits in PAYMENT_CONFIRM or
// SUBMITTING. The confirm action is blocked once the window expires.
type PaymentState struct {
	ExpiresAt  time.Time `json:"expiresAt"`
	Submitting bool      `json:"submitting"`
}

// BookingSession holds one booking flow between initiation and completion.
type BookingSession struct {
	SessionID string        `json:"sessionId"`
	UserID    string        `json:"userId"`
	Service   Service       `json:"service"`
	NurseID   string        `json:"nurseId,omitempty"`
	Step      BookingStep   `json:"step"`
	Draft     BookingDraft  `json:"draft"`
	Payment   *PaymentState `json:"payment,omitempty"`
	OrderID   string        `json:"orderId,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// DateOption is one selectable visit day.
type DateOption struct {
	Label string `json:"label"` // 今日, 明日, or M/D
	Date  string `json:"date"`  // ISO date
}

// SlotGrid is the selectable visit schedule shown while collecting a draft.
type SlotGrid struct {
	Dates       []DateOption `json:"dates"`
	Times       []string     `json:"times"`
	FullyBooked []string     `json:"fullyBooked"`
}
