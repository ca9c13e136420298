package provider

import (
	"fmt"
	"sync"

	"carebridge/models"
)

// MemoryProviderRepo is the seeded in-memory nurse roster.
type MemoryProviderRepo struct {
	mu     sync.RWMutex
	nurses []models.Nurse
}

// NewMemoryProviderRepo returns a roster seeded with sample nurses.
func NewMemoryProviderRepo() *MemoryProviderRepo {
	return &MemoryProviderRepo{nurses: seedNurses()}
}

func (r *MemoryProviderRepo) ListNurses() []models.Nurse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Nurse, len(r.nurses))
	copy(out, r.nurses)
	return out
}

func (r *MemoryProviderRepo) GetNurse(id string) (*models.Nurse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.nurses {
		if n.ID == id {
			nurse := n
			return &nurse, nil
		}
	}
	return nil, fmt.Errorf("nurse %s not found", id)
}

func (r *MemoryProviderRepo) AddNurse(n models.Nurse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.nurses {
		if existing.ID == n.ID {
			return fmt.Errorf("nurse %s already exists", n.ID)
		}
	}
	r.nurses = append(r.nurses, n)
	return nil
}

func (r *MemoryProviderRepo) SetCertStatus(id string, status models.CertStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.nurses {
		if r.nurses[i].ID == id {
			r.nurses[i].CertStatus = status
			return nil
		}
	}
	return fmt.Errorf("nurse %s not found", id)
}
