package certification

import (
	"context"

	"carebridge/models"
)

// ProfileUpdate carries profile-form field changes. Nil fields are left
// untouched; ToggleArea flips one district selection.
type ProfileUpdate struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	City       *string `json:"city,omitempty"`
	Address    *string `json:"address,omitempty"`
	ToggleArea *string `json:"toggleArea,omitempty"`
}

// CertificationService drives the provider certification wizard.
type CertificationService interface {
	StartCertification(ctx context.Context, providerID string) (*models.CertificationSession, error)
	GetCertification(ctx context.Context, sessionID string) (*models.CertificationSession, error)
	ChooseRole(ctx context.Context, sessionID string, role models.ProviderRole) (*models.CertificationSession, error)
	UpdateProfile(ctx context.Context, sessionID string, upd ProfileUpdate) (*models.CertificationSession, error)
	SubmitProfile(ctx context.Context, sessionID string) (*models.CertificationSession, error)
	AttachCertificate(ctx context.Context, sessionID, kind, ref string) (*models.CertificationSession, error)
	AdvanceToLiveness(ctx context.Context, sessionID string) (*models.CertificationSession, error)
	RunFaceVerification(ctx context.Context, sessionID string) (*models.CertificationSession, error)
	Finish(ctx context.Context, sessionID string) error
}
