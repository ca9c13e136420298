package booking

import (
	"strconv"
	"time"

	"carebridge/models"
)

// The booking flow is a strictly ordered state machine:
//
//	COLLECT -> PAYMENT_CONFIRM -> SUBMITTING -> DONE
//
// with one backward edge (explicit cancel from PAYMENT_CONFIRM back to
// COLLECT) and a failure edge (SUBMITTING back to PAYMENT_CONFIRM when the
// payment processor rejects). Every transition below is a pure function over
// a session value so the machine can be exercised without any session store.

const (
	// PaymentWindowSeconds is how long the confirm action stays available
	// once the payment sheet opens.
	PaymentWindowSeconds = 900

	maxProofImages = 3
)

// FirstUnmetRequirement reports the highest-priority missing draft field, or
// nil when the draft is complete. Priority order: patient, address, time
// slot, proof images, agreement.
func FirstUnmetRequirement(d models.BookingDraft) error {
	switch {
	case d.PatientID == "":
		return ErrPatientRequired
	case d.AddressID == "":
		return ErrAddressRequired
	case d.TimeSlot == "":
		return ErrTimeSlotRequired
	case len(d.ProofImages) == 0:
		return ErrProofRequired
	case !d.AgreementAccepted:
		return ErrAgreementRequired
	}
	return nil
}

// CanConfirmPayment reports whether the draft satisfies every precondition
// for opening the payment sheet.
func CanConfirmPayment(d models.BookingDraft) bool {
	return FirstUnmetRequirement(d) == nil
}

// SelectSlot records the chosen visit slot as a composite "dateLabel time"
// string. Selecting a fully booked time, or a date/time not on the grid, is
// a no-op: the draft is returned unchanged.
func SelectSlot(d models.BookingDraft, grid models.SlotGrid, dateLabel, t string) models.BookingDraft {
	if !containsDate(grid.Dates, dateLabel) || !contains(grid.Times, t) {
		return d
	}
	if contains(grid.FullyBooked, t) {
		return d
	}
	d.TimeSlot = dateLabel + " " + t
	return d
}

// AddProofImage appends a proof image reference, enforcing the cap of three.
func AddProofImage(d models.BookingDraft, ref string) (models.BookingDraft, error) {
	if len(d.ProofImages) >= maxProofImages {
		return d, ErrProofLimit
	}
	d.ProofImages = append(append([]string(nil), d.ProofImages...), ref)
	return d, nil
}

// RemoveProofImage drops the proof image at the given index. An out-of-range
// index is a no-op.
func RemoveProofImage(d models.BookingDraft, idx int) models.BookingDraft {
	if idx < 0 || idx >= len(d.ProofImages) {
		return d
	}
	imgs := make([]string, 0, len(d.ProofImages)-1)
	imgs = append(imgs, d.ProofImages[:idx]...)
	imgs = append(imgs, d.ProofImages[idx+1:]...)
	d.ProofImages = imgs
	return d
}

// BeginPayment moves COLLECT to PAYMENT_CONFIRM once the draft is complete,
// opening the payment window. An incomplete draft keeps the flow in COLLECT
// and reports the first unmet precondition.
func BeginPayment(s models.BookingSession, now time.Time) (models.BookingSession, error) {
	if s.Step != models.BookingCollect {
		return s, NewStateError("payment can only be initiated while collecting the draft")
	}
	if err := FirstUnmetRequirement(s.Draft); err != nil {
		return s, err
	}
	s.Step = models.BookingPaymentConfirm
	s.Payment = &models.PaymentState{ExpiresAt: now.Add(PaymentWindowSeconds * time.Second)}
	return s, nil
}

// AbortPayment moves PAYMENT_CONFIRM back to COLLECT. Not permitted while a
// submission is in flight.
func AbortPayment(s models.BookingSession) (models.BookingSession, error) {
	if s.Step != models.BookingPaymentConfirm {
		return s, NewStateError("no payment in progress")
	}
	if s.Payment != nil && s.Payment.Submitting {
		return s, ErrAlreadySubmitting
	}
	s.Step = models.BookingCollect
	s.Payment = nil
	return s, nil
}

// BeginSubmit moves PAYMENT_CONFIRM to SUBMITTING. Blocked when the window
// has expired or a submission is already in flight.
func BeginSubmit(s models.BookingSession, now time.Time) (models.BookingSession, error) {
	if s.Step != models.BookingPaymentConfirm || s.Payment == nil {
		return s, NewStateError("no payment in progress")
	}
	if s.Payment.Submitting {
		return s, ErrAlreadySubmitting
	}
	if PaymentRemaining(s, now) <= 0 {
		return s, ErrPaymentExpired
	}
	s.Step = models.BookingSubmitting
	s.Payment.Submitting = true
	return s, nil
}

// FailSubmit returns a rejected submission to PAYMENT_CONFIRM so the user
// can retry or cancel.
func FailSubmit(s models.BookingSession) models.BookingSession {
	if s.Step != models.BookingSubmitting || s.Payment == nil {
		return s
	}
	s.Step = models.BookingPaymentConfirm
	s.Payment.Submitting = false
	return s
}

// CompleteSubmit terminates the flow with the generated order identifier.
func CompleteSubmit(s models.BookingSession, orderID string) models.BookingSession {
	s.Step = models.BookingDone
	s.OrderID = orderID
	if s.Payment != nil {
		s.Payment.Submitting = false
	}
	return s
}

// PaymentRemaining returns the number of whole seconds left in the payment
// window, never negative.
func PaymentRemaining(s models.BookingSession, now time.Time) int {
	if s.Payment == nil {
		return 0
	}
	remaining := int(s.Payment.ExpiresAt.Sub(now).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NewOrderID generates an order identifier: the literal "ORD" prefix plus
// the trailing eight digits of the millisecond timestamp.
func NewOrderID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "ORD" + ms
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsDate(dates []models.DateOption, label string) bool {
	for _, d := range dates {
		if d.Label == label {
			return true
		}
	}
	return false
}
