package booking

import (
	"strconv"
	"testing"
	"time"

	"carebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() models.BookingDraft {
	return models.BookingDraft{
		PatientID:         "p1",
		AddressID:         "a1",
		TimeSlot:          "今日 09:00",
		ProofImages:       []string{"proof.jpg"},
		AgreementAccepted: true,
	}
}

func TestFirstUnmetRequirementPriority(t *testing.T) {
	d := models.BookingDraft{}
	assert.Equal(t, ErrPatientRequired, FirstUnmetRequirement(d))

	d.PatientID = "p1"
	assert.Equal(t, ErrAddressRequired, FirstUnmetRequirement(d))

	d.AddressID = "a1"
	assert.Equal(t, ErrTimeSlotRequired, FirstUnmetRequirement(d))

	d.TimeSlot = "今日 09:00"
	assert.Equal(t, ErrProofRequired, FirstUnmetRequirement(d))

	d.ProofImages = []string{"proof.jpg"}
	assert.Equal(t, ErrAgreementRequired, FirstUnmetRequirement(d))

	d.AgreementAccepted = true
	assert.NoError(t, FirstUnmetRequirement(d))
	assert.True(t, CanConfirmPayment(d))
}

func TestFirstUnmetRequirementReportsPatientFirst(t *testing.T) {
	// Everything missing at once still reports the patient.
	d := models.BookingDraft{AgreementAccepted: false}
	assert.Equal(t, ErrPatientRequired, FirstUnmetRequirement(d))
}

func TestSelectSlot(t *testing.T) {
	grid := BuildSlotGrid(time.Now())
	d := models.BookingDraft{}

	d = SelectSlot(d, grid, "今日", "09:00")
	assert.Equal(t, "今日 09:00", d.TimeSlot)

	// Fully booked times are a silent no-op.
	d = SelectSlot(d, grid, "明日", "11:00")
	assert.Equal(t, "今日 09:00", d.TimeSlot)
	d = SelectSlot(d, grid, "明日", "15:00")
	assert.Equal(t, "今日 09:00", d.TimeSlot)

	// Off-grid selections are a silent no-op too.
	d = SelectSlot(d, grid, "昨日", "09:00")
	assert.Equal(t, "今日 09:00", d.TimeSlot)
	d = SelectSlot(d, grid, "今日", "08:00")
	assert.Equal(t, "今日 09:00", d.TimeSlot)

	// A valid reselection replaces the slot.
	d = SelectSlot(d, grid, "明日", "20:00")
	assert.Equal(t, "明日 20:00", d.TimeSlot)
}

func TestBuildSlotGrid(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	grid := BuildSlotGrid(now)

	require.Len(t, grid.Dates, 7)
	assert.Equal(t, "今日", grid.Dates[0].Label)
	assert.Equal(t, "2026-08-31", grid.Dates[0].Date)
	assert.Equal(t, "明日", grid.Dates[1].Label)
	assert.Equal(t, "9/2", grid.Dates[2].Label)

	require.Len(t, grid.Times, 12)
	assert.Equal(t, "09:00", grid.Times[0])
	assert.Equal(t, "20:00", grid.Times[11])
	assert.ElementsMatch(t, []string{"11:00", "15:00"}, grid.FullyBooked)
}

func TestProofImageCap(t *testing.T) {
	d := models.BookingDraft{}
	var err error
	for i := 0; i < 3; i++ {
		d, err = AddProofImage(d, "img")
		require.NoError(t, err)
	}
	_, err = AddProofImage(d, "img4")
	assert.Equal(t, ErrProofLimit, err)

	d = RemoveProofImage(d, 1)
	assert.Len(t, d.ProofImages, 2)
	d = RemoveProofImage(d, 9)
	assert.Len(t, d.ProofImages, 2)

	d, err = AddProofImage(d, "img5")
	require.NoError(t, err)
	assert.Len(t, d.ProofImages, 3)
}

func TestBeginPaymentOpensWindow(t *testing.T) {
	now := time.Now()
	s := models.BookingSession{Step: models.BookingCollect, Draft: completeDraft()}

	next, err := BeginPayment(s, now)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaymentConfirm, next.Step)
	require.NotNil(t, next.Payment)
	assert.Equal(t, PaymentWindowSeconds, PaymentRemaining(next, now))
}

func TestBeginPaymentRejectsIncompleteDraft(t *testing.T) {
	s := models.BookingSession{Step: models.BookingCollect}
	_, err := BeginPayment(s, time.Now())
	assert.Equal(t, ErrPatientRequired, err)
}

func TestPaymentWindowExpiry(t *testing.T) {
	now := time.Now()
	s := models.BookingSession{Step: models.BookingCollect, Draft: completeDraft()}
	s, err := BeginPayment(s, now)
	require.NoError(t, err)

	// Inside the window the submit is allowed.
	_, err = BeginSubmit(s, now.Add(899*time.Second))
	assert.NoError(t, err)

	// At and past expiry it is not.
	_, err = BeginSubmit(s, now.Add(900*time.Second))
	assert.Equal(t, ErrPaymentExpired, err)
	_, err = BeginSubmit(s, now.Add(2*time.Hour))
	assert.Equal(t, ErrPaymentExpired, err)

	assert.Equal(t, 0, PaymentRemaining(s, now.Add(2*time.Hour)))
}

func TestSubmitFailureReturnsToPaymentConfirm(t *testing.T) {
	now := time.Now()
	s := models.BookingSession{Step: models.BookingCollect, Draft: completeDraft()}
	s, err := BeginPayment(s, now)
	require.NoError(t, err)
	s, err = BeginSubmit(s, now)
	require.NoError(t, err)
	assert.Equal(t, models.BookingSubmitting, s.Step)
	assert.True(t, s.Payment.Submitting)

	// A second submit while in flight is rejected.
	_, err = BeginSubmit(s, now)
	assert.Error(t, err)

	s = FailSubmit(s)
	assert.Equal(t, models.BookingPaymentConfirm, s.Step)
	assert.False(t, s.Payment.Submitting)

	// After the failure the user can retry.
	s, err = BeginSubmit(s, now)
	require.NoError(t, err)
	s = CompleteSubmit(s, "ORD12345678")
	assert.Equal(t, models.BookingDone, s.Step)
	assert.Equal(t, "ORD12345678", s.OrderID)
}

func TestAbortPayment(t *testing.T) {
	now := time.Now()
	s := models.BookingSession{Step: models.BookingCollect, Draft: completeDraft()}
	s, err := BeginPayment(s, now)
	require.NoError(t, err)

	s, err = AbortPayment(s)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCollect, s.Step)
	assert.Nil(t, s.Payment)

	// Aborting while a submission is in flight is rejected.
	s, err = BeginPayment(s, now)
	require.NoError(t, err)
	s, err = BeginSubmit(s, now)
	require.NoError(t, err)
	s.Step = models.BookingPaymentConfirm // window reopened but still submitting
	_, err = AbortPayment(s)
	assert.Equal(t, ErrAlreadySubmitting, err)
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 30, 45, 123e6, time.UTC)
	id := NewOrderID(now)

	require.Len(t, id, 11)
	assert.Equal(t, "ORD", id[:3])
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	assert.Equal(t, ms[len(ms)-8:], id[3:])
}

func TestPayableTotal(t *testing.T) {
	svc := models.Service{Price: 89}
	assert.Equal(t, 89.0, PayableTotal(svc, nil))

	coupon := &models.Coupon{Amount: 20, MinSpend: 100}
	// The minimum-spend floor is not enforced.
	assert.Equal(t, 69.0, PayableTotal(svc, coupon))

	svc.Price = 150
	coupon = &models.Coupon{Amount: 10, MinSpend: 50}
	assert.Equal(t, 140.0, PayableTotal(svc, coupon))
}
