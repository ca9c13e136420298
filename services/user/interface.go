package user

import (
	"context"

	"carebridge/models"
)

// AuthService handles phone-code login and the persisted auth record.
type AuthService interface {
	RequestOTP(ctx context.Context, phone string) (cooldownSeconds int, err error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthSession, error)
	GetAuthRecord(ctx context.Context, phone string) (*models.AuthRecord, error)
	Logout(ctx context.Context, phone string) error
}

// UserDataService serves the logged-in user's booking-side data.
type UserDataService interface {
	Patients() []models.Patient
	Addresses() []models.Address
	Coupons() []models.Coupon
	HealthRecords() []models.NursingRecord
	Reports() []models.MedicalReport
}
