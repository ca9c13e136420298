package completion

import (
	"testing"

	"carebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanVerify(t *testing.T) {
	assert.False(t, CanVerify(""))
	assert.False(t, CanVerify("12345"))
	assert.True(t, CanVerify("123456"))
	assert.False(t, CanVerify("1234567"))
	// Length is counted in runes, not bytes.
	assert.True(t, CanVerify("核销码一二三"))
}

func TestCompleteVerify(t *testing.T) {
	s := models.CompletionSession{Step: models.CompletionVerify}
	next, err := CompleteVerify(s, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.CompletionRecord, next.Step)
	assert.Equal(t, "482913", next.Draft.VerificationCode)

	_, err = CompleteVerify(next, "482913")
	assert.Error(t, err)
}

func TestRecordGate(t *testing.T) {
	s := models.CompletionSession{Step: models.CompletionRecord}

	_, err := AdvanceToSign(s)
	assert.Equal(t, ErrRecordIncomplete, err)

	s.Draft.Vitals = models.Vitals{BP: "120/80", Temp: "36.5", Pulse: "72"}
	_, err = AdvanceToSign(s)
	assert.Equal(t, ErrRecordIncomplete, err)

	s.Draft.Summary = "伤口换药完成，愈合良好。"
	next, err := AdvanceToSign(s)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionSign, next.Step)

	// Blanking a vital re-blocks the gate.
	s.Draft.Vitals.Temp = ""
	assert.False(t, RecordComplete(s.Draft))
}

func TestSitePhotoCapTruncates(t *testing.T) {
	d := models.TaskCompletionDraft{}

	d = AddSitePhotos(d, []string{"1.jpg", "2.jpg", "3.jpg"})
	assert.Len(t, d.SitePhotos, 3)

	// Adding past the cap keeps the first five and drops the rest.
	d = AddSitePhotos(d, []string{"4.jpg", "5.jpg", "6.jpg", "7.jpg"})
	assert.Equal(t, []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}, d.SitePhotos)

	d = RemoveSitePhoto(d, 0)
	assert.Equal(t, []string{"2.jpg", "3.jpg", "4.jpg", "5.jpg"}, d.SitePhotos)
	d = RemoveSitePhoto(d, 99)
	assert.Len(t, d.SitePhotos, 4)
}

func TestPointerEventFolding(t *testing.T) {
	d := models.TaskCompletionDraft{}

	// Moves before any pen-down are ignored.
	d = ApplyPointerEvent(d, models.PointerEvent{Type: "move", X: 1, Y: 1})
	assert.Empty(t, d.Strokes)

	d = ApplyPointerEvent(d, models.PointerEvent{Type: "down", X: 10, Y: 10})
	d = ApplyPointerEvent(d, models.PointerEvent{Type: "move", X: 20, Y: 15})
	d = ApplyPointerEvent(d, models.PointerEvent{Type: "move", X: 30, Y: 20})
	d = ApplyPointerEvent(d, models.PointerEvent{Type: "up"})

	require.Len(t, d.Strokes, 1)
	assert.Len(t, d.Strokes[0].Points, 3)
	assert.False(t, d.Drawing)

	// Moves after pen-up are ignored until the next pen-down.
	d = ApplyPointerEvent(d, models.PointerEvent{Type: "move", X: 99, Y: 99})
	assert.Len(t, d.Strokes[0].Points, 3)

	d = ApplyPointerEvent(d, models.PointerEvent{Type: "down", X: 50, Y: 50})
	require.Len(t, d.Strokes, 2)
	assert.True(t, HasSignature(d))

	d = ClearStrokes(d)
	assert.Empty(t, d.Strokes)
	assert.False(t, HasSignature(d))
}

func TestCompleteSignRequiresInk(t *testing.T) {
	s := models.CompletionSession{Step: models.CompletionSign}

	_, err := CompleteSign(s, "mem://signatures/x")
	assert.Equal(t, ErrSignatureRequired, err)

	s.Draft = ApplyPointerEvent(s.Draft, models.PointerEvent{Type: "down", X: 1, Y: 1})
	next, err := CompleteSign(s, "mem://signatures/x")
	require.NoError(t, err)
	assert.Equal(t, models.CompletionPreview, next.Step)
	assert.Equal(t, "mem://signatures/x", next.Draft.SignatureRef)
}

func TestSubmitGuard(t *testing.T) {
	s := models.CompletionSession{Step: models.CompletionPreview}

	submitting, err := BeginSubmit(s)
	require.NoError(t, err)
	assert.True(t, submitting.Draft.Submitting)

	_, err = BeginSubmit(submitting)
	assert.Equal(t, ErrAlreadySubmitting, err)

	released := FailSubmit(submitting)
	assert.False(t, released.Draft.Submitting)
	_, err = BeginSubmit(released)
	assert.NoError(t, err)
}

func TestExceptionRules(t *testing.T) {
	assert.False(t, CanReportException(models.CompletionVerify))
	assert.True(t, CanReportException(models.CompletionRecord))
	assert.True(t, CanReportException(models.CompletionSign))
	assert.True(t, CanReportException(models.CompletionPreview))

	for _, reason := range ExceptionReasons {
		assert.True(t, ValidExceptionReason(reason))
	}
	assert.False(t, ValidExceptionReason("其他"))
	assert.False(t, ValidExceptionReason(""))
}
