package user

import (
	"carebridge/database/repository"
	"carebridge/models"
)

// DefaultUserDataService serves patients, addresses, coupons, and the care
// history from the seeded repository.
type DefaultUserDataService struct {
	Repo repository.UserDataRepository
}

func NewUserDataService(repo repository.UserDataRepository) *DefaultUserDataService {
	return &DefaultUserDataService{Repo: repo}
}

func (s *DefaultUserDataService) Patients() []models.Patient {
	return s.Repo.ListPatients()
}

func (s *DefaultUserDataService) Addresses() []models.Address {
	return s.Repo.ListAddresses()
}

func (s *DefaultUserDataService) Coupons() []models.Coupon {
	return s.Repo.ListCoupons()
}

func (s *DefaultUserDataService) HealthRecords() []models.NursingRecord {
	return s.Repo.ListHealthRecords()
}

func (s *DefaultUserDataService) Reports() []models.MedicalReport {
	return s.Repo.ListReports()
}
