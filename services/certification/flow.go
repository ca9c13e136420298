package certification

import "carebridge/models"

// maxServiceAreas is the district cap on the profile form. Selecting beyond
// the cap is silently ignored; deselecting always works.
const maxServiceAreas = 2

// ChooseRole records the provider role and advances to the profile form.
func ChooseRole(s models.CertificationSession, role models.ProviderRole) (models.CertificationSession, error) {
	if s.Step != models.CertRoleSelect {
		return s, NewStateError("role is chosen at the start of certification")
	}
	if role != models.RoleNurse && role != models.RoleRehab && role != models.RoleDoctor {
		return s, ErrRoleRequired
	}
	s.Draft.Role = role
	s.Step = models.CertProfileForm
	return s, nil
}

// ToggleServiceArea flips a district on the profile form. Adding a third
// district is a silent no-op.
func ToggleServiceArea(d models.CertificationDraft, district string) models.CertificationDraft {
	for i, have := range d.ServiceAreas {
		if have == district {
			d.ServiceAreas = append(append([]string{}, d.ServiceAreas[:i]...), d.ServiceAreas[i+1:]...)
			return d
		}
	}
	if len(d.ServiceAreas) >= maxServiceAreas {
		return d
	}
	d.ServiceAreas = append(append([]string{}, d.ServiceAreas...), district)
	return d
}

// SubmitProfile advances from the profile form to document upload. The form
// fields themselves are free-text and not validated.
func SubmitProfile(s models.CertificationSession) (models.CertificationSession, error) {
	if s.Step != models.CertProfileForm {
		return s, NewStateError("profile is submitted from the profile form")
	}
	s.Step = models.CertDocumentUpload
	return s, nil
}

// AttachCertificate stores an uploaded certificate reference. Kind is one of
// "primary", "practice", or "special"; special certificates accumulate
// without a cap. An empty ref clears a primary or practice upload.
func AttachCertificate(d models.CertificationDraft, kind, ref string) (models.CertificationDraft, error) {
	switch kind {
	case "primary":
		d.PrimaryCert = ref
	case "practice":
		d.PracticeCert = ref
	case "special":
		if ref != "" {
			d.SpecialCerts = append(append([]string{}, d.SpecialCerts...), ref)
		}
	default:
		return d, NewValidationError("unknown certificate kind")
	}
	return d, nil
}

// CanAdvanceToLiveness reports whether both required certificates are in
// place. Special certificates are optional and never gate progress.
func CanAdvanceToLiveness(d models.CertificationDraft) bool {
	return d.PrimaryCert != "" && d.PracticeCert != ""
}

// AdvanceToLiveness moves to the liveness check once both required
// certificates are uploaded.
func AdvanceToLiveness(s models.CertificationSession) (models.CertificationSession, error) {
	if s.Step != models.CertDocumentUpload {
		return s, NewStateError("documents are uploaded before the liveness check")
	}
	if !CanAdvanceToLiveness(s.Draft) {
		return s, ErrDocumentsRequired
	}
	s.Step = models.CertLivenessCheck
	s.Draft.FaceVerify = models.FaceIdle
	return s, nil
}

// BeginFaceVerify marks the liveness check as running.
func BeginFaceVerify(s models.CertificationSession) (models.CertificationSession, error) {
	if s.Step != models.CertLivenessCheck {
		return s, NewStateError("liveness check follows document upload")
	}
	if s.Draft.FaceVerify == models.FaceVerifying {
		return s, ErrVerifyInProgress
	}
	s.Draft.FaceVerify = models.FaceVerifying
	return s, nil
}

// FailFaceVerify resets the liveness check so it can be retried.
func FailFaceVerify(s models.CertificationSession) models.CertificationSession {
	s.Draft.FaceVerify = models.FaceIdle
	return s
}

// CompleteFaceVerify records a passed liveness check and finishes the wizard.
func CompleteFaceVerify(s models.CertificationSession) models.CertificationSession {
	s.Draft.FaceVerify = models.FaceDone
	s.Step = models.CertComplete
	return s
}
