package models

// ProviderRole is the type of service-supplying actor on the platform.
type ProviderRole string

const (
	RoleNurse  ProviderRole = "nurse"
	RoleRehab  ProviderRole = "rehab"
	RoleDoctor ProviderRole = "doctor"
)

// CertStatus tracks where a provider is in the certification pipeline.
type CertStatus string

const (
	CertNone     CertStatus = "none"
	CertPending  CertStatus = "pending"
	CertVerified CertStatus = "verified"
	CertRejected CertStatus = "rejected"
)

// Nurse is a provider as shown to patients browsing the marketplace.
type Nurse struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Avatar     string       `json:"avatar,omitempty"`
	Hospital   string       `json:"hospital"`
	Department string       `json:"department"`
	Tags       []string     `json:"tags,omitempty"`
	Rating     float64      `json:"rating"`
	OrderCount int          `json:"orderCount"`
	Distance   string       `json:"distance,omitempty"`
	Intro      string       `json:"intro,omitempty"`
	Role       ProviderRole `json:"role,omitempty"`
	CertStatus CertStatus   `json:"certStatus,omitempty"`
}
