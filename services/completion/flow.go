package completion

import "carebridge/models"

const (
	verificationCodeLen = 6
	maxSitePhotos       = 5
)

// ExceptionReasons is the fixed list the provider picks from when ending a
// visit abnormally.
var ExceptionReasons = []string{
	"患者突发不适/过敏",
	"药品规格不符",
	"不配合/纠纷",
}

// CanVerify reports whether the entered code is complete. Validity against
// the order is checked by the verifier, not here.
func CanVerify(code string) bool {
	return len([]rune(code)) == verificationCodeLen
}

// CompleteVerify advances past check-in after the code is accepted.
func CompleteVerify(s models.CompletionSession, code string) (models.CompletionSession, error) {
	if s.Step != models.CompletionVerify {
		return s, NewStateError("check-in happens at the start of the visit")
	}
	s.Draft.VerificationCode = code
	s.Step = models.CompletionRecord
	return s, nil
}

// RecordComplete reports whether the care record gates are met: all three
// vitals plus a non-empty summary. Site photos are optional.
func RecordComplete(d models.TaskCompletionDraft) bool {
	return d.Vitals.BP != "" && d.Vitals.Temp != "" && d.Vitals.Pulse != "" && d.Summary != ""
}

// AddSitePhotos appends photo refs, truncating past the cap. Adding beyond
// the cap keeps the first five and drops the rest silently.
func AddSitePhotos(d models.TaskCompletionDraft, refs []string) models.TaskCompletionDraft {
	merged := append(append([]string{}, d.SitePhotos...), refs...)
	if len(merged) > maxSitePhotos {
		merged = merged[:maxSitePhotos]
	}
	d.SitePhotos = merged
	return d
}

// RemoveSitePhoto drops the photo at index; out-of-range is a no-op.
func RemoveSitePhoto(d models.TaskCompletionDraft, index int) models.TaskCompletionDraft {
	if index < 0 || index >= len(d.SitePhotos) {
		return d
	}
	d.SitePhotos = append(append([]string{}, d.SitePhotos[:index]...), d.SitePhotos[index+1:]...)
	return d
}

// AdvanceToSign moves to the signature pad once the record is complete.
func AdvanceToSign(s models.CompletionSession) (models.CompletionSession, error) {
	if s.Step != models.CompletionRecord {
		return s, NewStateError("the record is filled before signing")
	}
	if !RecordComplete(s.Draft) {
		return s, ErrRecordIncomplete
	}
	s.Step = models.CompletionSign
	return s, nil
}

// ApplyPointerEvent folds one capture-surface sample into the stroke list.
// A "down" starts a stroke, "move" extends the open one, "up" closes it.
// Moves without a pen down are ignored.
func ApplyPointerEvent(d models.TaskCompletionDraft, ev models.PointerEvent) models.TaskCompletionDraft {
	switch ev.Type {
	case "down":
		d.Strokes = append(append([]models.Stroke{}, d.Strokes...), models.Stroke{
			Points: []models.Point{{X: ev.X, Y: ev.Y}},
		})
		d.Drawing = true
	case "move":
		if !d.Drawing || len(d.Strokes) == 0 {
			return d
		}
		strokes := append([]models.Stroke{}, d.Strokes...)
		last := strokes[len(strokes)-1]
		last.Points = append(append([]models.Point{}, last.Points...), models.Point{X: ev.X, Y: ev.Y})
		strokes[len(strokes)-1] = last
		d.Strokes = strokes
	case "up":
		d.Drawing = false
	}
	return d
}

// ClearStrokes wipes the signature pad.
func ClearStrokes(d models.TaskCompletionDraft) models.TaskCompletionDraft {
	d.Strokes = nil
	d.Drawing = false
	return d
}

// HasSignature reports whether any ink was laid down.
func HasSignature(d models.TaskCompletionDraft) bool {
	for _, s := range d.Strokes {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}

// CompleteSign stores the rendered signature ref and advances to preview.
func CompleteSign(s models.CompletionSession, signatureRef string) (models.CompletionSession, error) {
	if s.Step != models.CompletionSign {
		return s, NewStateError("signing follows the care record")
	}
	if !HasSignature(s.Draft) {
		return s, ErrSignatureRequired
	}
	s.Draft.SignatureRef = signatureRef
	s.Step = models.CompletionPreview
	return s, nil
}

// BeginSubmit guards the final submission against double taps.
func BeginSubmit(s models.CompletionSession) (models.CompletionSession, error) {
	if s.Step != models.CompletionPreview {
		return s, NewStateError("submission happens from the preview")
	}
	if s.Draft.Submitting {
		return s, ErrAlreadySubmitting
	}
	s.Draft.Submitting = true
	return s, nil
}

// FailSubmit releases the in-flight guard after a failed submission.
func FailSubmit(s models.CompletionSession) models.CompletionSession {
	s.Draft.Submitting = false
	return s
}

// CanReportException reports whether the current step allows an abnormal
// exit. Check-in must have succeeded first.
func CanReportException(step models.CompletionStep) bool {
	switch step {
	case models.CompletionRecord, models.CompletionSign, models.CompletionPreview:
		return true
	}
	return false
}

// ValidExceptionReason reports whether the reason is on the fixed list.
func ValidExceptionReason(reason string) bool {
	for _, r := range ExceptionReasons {
		if r == reason {
			return true
		}
	}
	return false
}
