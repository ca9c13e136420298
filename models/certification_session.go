package models

import "time"

// CertificationStep indexes the linear certification wizard.
type CertificationStep int

const (
	CertRoleSelect CertificationStep = iota
	CertProfileForm
	CertDocumentUpload
	CertLivenessCheck
	CertComplete
)

// FaceVerifyState tracks the liveness check.
type FaceVerifyState string

const (
	FaceIdle      FaceVerifyState = "idle"
	FaceVerifying FaceVerifyState = "verifying"
	FaceDone      FaceVerifyState = "done"
)

// CertificationProfile carries the basic-information form fields.
type CertificationProfile struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

// CertificationDraft is the in-progress data of one certification flow.
// ServiceAreas holds at most two districts; a third selection is ignored.
type CertificationDraft struct {
	Role         ProviderRole         `json:"role,omitempty"`
	Profile      CertificationProfile `json:"profile"`
	ServiceAreas []string             `json:"serviceAreas,omitempty"`
	PrimaryCert  string               `json:"primaryCert,omitempty"`
	PracticeCert string               `json:"practiceCert,omitempty"`
	SpecialCerts []string             `json:"specialCerts,omitempty"`
	FaceVerify   FaceVerifyState      `json:"faceVerify"`
}

// CertificationSession holds one certification wizard run.
type CertificationSession struct {
	SessionID  string             `json:"sessionId"`
	ProviderID string             `json:"providerId"`
	Step       CertificationStep  `json:"step"`
	Draft      CertificationDraft `json:"draft"`
	CreatedAt  time.Time          `json:"createdAt"`
}
