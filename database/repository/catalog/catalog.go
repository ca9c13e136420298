package catalog

import (
	"fmt"
	"sync"

	"carebridge/models"
)

// MemoryCatalogRepo is the seeded in-memory service catalog.
type MemoryCatalogRepo struct {
	mu         sync.RWMutex
	services   []models.Service
	categories []models.Category
	cities     []models.City
}

// NewMemoryCatalogRepo returns a catalog seeded with the launch offering.
func NewMemoryCatalogRepo() *MemoryCatalogRepo {
	return &MemoryCatalogRepo{
		services:   seedServices(),
		categories: seedCategories(),
		cities:     seedCities(),
	}
}

func (r *MemoryCatalogRepo) ListServices() []models.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Service, len(r.services))
	copy(out, r.services)
	return out
}

func (r *MemoryCatalogRepo) GetService(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.services {
		if s.ID == id {
			svc := s
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

func (r *MemoryCatalogRepo) ListCategories() []models.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

func (r *MemoryCatalogRepo) ListCities() []models.City {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.City, len(r.cities))
	copy(out, r.cities)
	return out
}
