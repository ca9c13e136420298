package provider

import (
	"carebridge/database/repository"
	"carebridge/models"
)

// DefaultRosterService serves nurses from the seeded roster.
type DefaultRosterService struct {
	Repo repository.ProviderRepository
}

func NewRosterService(repo repository.ProviderRepository) *DefaultRosterService {
	return &DefaultRosterService{Repo: repo}
}

func (s *DefaultRosterService) ListNurses() []models.Nurse {
	return s.Repo.ListNurses()
}

func (s *DefaultRosterService) GetNurse(id string) (*models.Nurse, error) {
	return s.Repo.GetNurse(id)
}
