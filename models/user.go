package models

// AuthRecord is the single persisted authentication entry for a user,
// written on successful login and read back at startup.
type AuthRecord struct {
	IsLoggedIn      bool   `json:"isLoggedIn"`
	IsPhoneVerified bool   `json:"isPhoneVerified"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	Nickname        string `json:"nickname,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
}

// AuthSession couples an auth record with its issued token.
type AuthSession struct {
	Token  string     `json:"token"`
	Record AuthRecord `json:"record"`
}

// Patient is a person receiving care, owned by a user account.
type Patient struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Allergies      string `json:"allergies,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
	Symptoms       string `json:"symptoms,omitempty"`
}

// Address is a saved visit address.
type Address struct {
	ID         string `json:"id"`
	Address    string `json:"address"`
	RoomNumber string `json:"roomNumber,omitempty"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"isDefault"`
}

// Coupon is a flat-amount deduction voucher.
type Coupon struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	MinSpend   float64 `json:"minSpend"`
	ExpiryDate string  `json:"expiryDate"`
	Status     string  `json:"status"` // unused, used, expired
}

// MedicalReport is an uploaded report document reference.
type MedicalReport struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"` // PDF, JPG
	URL   string `json:"url"`
	Size  string `json:"size"`
}
