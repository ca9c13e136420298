package certification

import (
	"testing"

	"carebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseRole(t *testing.T) {
	s := models.CertificationSession{Step: models.CertRoleSelect}

	next, err := ChooseRole(s, models.RoleNurse)
	require.NoError(t, err)
	assert.Equal(t, models.CertProfileForm, next.Step)
	assert.Equal(t, models.RoleNurse, next.Draft.Role)

	_, err = ChooseRole(s, models.ProviderRole("pilot"))
	assert.Equal(t, ErrRoleRequired, err)

	// Role cannot be re-chosen later in the wizard.
	_, err = ChooseRole(next, models.RoleDoctor)
	assert.Error(t, err)
}

func TestToggleServiceAreaCap(t *testing.T) {
	d := models.CertificationDraft{}

	d = ToggleServiceArea(d, "朝阳区")
	d = ToggleServiceArea(d, "海淀区")
	assert.Equal(t, []string{"朝阳区", "海淀区"}, d.ServiceAreas)

	// A third district is silently ignored.
	d = ToggleServiceArea(d, "丰台区")
	assert.Equal(t, []string{"朝阳区", "海淀区"}, d.ServiceAreas)

	// Deselecting always works, and frees a slot.
	d = ToggleServiceArea(d, "朝阳区")
	assert.Equal(t, []string{"海淀区"}, d.ServiceAreas)
	d = ToggleServiceArea(d, "丰台区")
	assert.Equal(t, []string{"海淀区", "丰台区"}, d.ServiceAreas)
}

func TestDocumentGate(t *testing.T) {
	s := models.CertificationSession{Step: models.CertDocumentUpload}

	_, err := AdvanceToLiveness(s)
	assert.Equal(t, ErrDocumentsRequired, err)

	var draft models.CertificationDraft
	draft, err = AttachCertificate(s.Draft, "primary", "primary.jpg")
	require.NoError(t, err)
	s.Draft = draft
	_, err = AdvanceToLiveness(s)
	assert.Equal(t, ErrDocumentsRequired, err)

	draft, err = AttachCertificate(s.Draft, "practice", "practice.jpg")
	require.NoError(t, err)
	s.Draft = draft
	next, err := AdvanceToLiveness(s)
	require.NoError(t, err)
	assert.Equal(t, models.CertLivenessCheck, next.Step)
	assert.Equal(t, models.FaceIdle, next.Draft.FaceVerify)
}

func TestClearingRequiredDocumentBlocksAgain(t *testing.T) {
	s := models.CertificationSession{Step: models.CertDocumentUpload}
	s.Draft.PrimaryCert = "primary.jpg"
	s.Draft.PracticeCert = "practice.jpg"
	require.True(t, CanAdvanceToLiveness(s.Draft))

	draft, err := AttachCertificate(s.Draft, "practice", "")
	require.NoError(t, err)
	assert.False(t, CanAdvanceToLiveness(draft))

	// Reinstating the document unblocks progress.
	draft, err = AttachCertificate(draft, "practice", "practice2.jpg")
	require.NoError(t, err)
	assert.True(t, CanAdvanceToLiveness(draft))
}

func TestSpecialCertsAreUncappedAndOptional(t *testing.T) {
	d := models.CertificationDraft{PrimaryCert: "p.jpg", PracticeCert: "q.jpg"}
	var err error
	for i := 0; i < 10; i++ {
		d, err = AttachCertificate(d, "special", "special.jpg")
		require.NoError(t, err)
	}
	assert.Len(t, d.SpecialCerts, 10)
	assert.True(t, CanAdvanceToLiveness(d))

	_, err = AttachCertificate(d, "diploma", "x.jpg")
	assert.Error(t, err)
}

func TestFaceVerifyLifecycle(t *testing.T) {
	s := models.CertificationSession{Step: models.CertLivenessCheck}
	s.Draft.FaceVerify = models.FaceIdle

	running, err := BeginFaceVerify(s)
	require.NoError(t, err)
	assert.Equal(t, models.FaceVerifying, running.Draft.FaceVerify)

	// Double-start is rejected.
	_, err = BeginFaceVerify(running)
	assert.Equal(t, ErrVerifyInProgress, err)

	// A failure resets to idle for retry, still on the liveness step.
	failed := FailFaceVerify(running)
	assert.Equal(t, models.FaceIdle, failed.Draft.FaceVerify)
	assert.Equal(t, models.CertLivenessCheck, failed.Step)
	_, err = BeginFaceVerify(failed)
	assert.NoError(t, err)

	// Success finishes the wizard.
	done := CompleteFaceVerify(running)
	assert.Equal(t, models.FaceDone, done.Draft.FaceVerify)
	assert.Equal(t, models.CertComplete, done.Step)
}

func TestProfileSubmitOnlyFromForm(t *testing.T) {
	s := models.CertificationSession{Step: models.CertProfileForm}
	next, err := SubmitProfile(s)
	require.NoError(t, err)
	assert.Equal(t, models.CertDocumentUpload, next.Step)

	_, err = SubmitProfile(next)
	assert.Error(t, err)
}
