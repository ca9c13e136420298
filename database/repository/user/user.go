package user

import (
	"fmt"
	"sync"

	"carebridge/models"
)

// MemoryUserDataRepo is the seeded in-memory store for booking-side user data.
type MemoryUserDataRepo struct {
	mu        sync.RWMutex
	patients  []models.Patient
	addresses []models.Address
	coupons   []models.Coupon
	records   []models.NursingRecord
	reports   []models.MedicalReport
}

// NewMemoryUserDataRepo returns a store seeded with sample user data.
func NewMemoryUserDataRepo() *MemoryUserDataRepo {
	return &MemoryUserDataRepo{
		patients:  seedPatients(),
		addresses: seedAddresses(),
		coupons:   seedCoupons(),
		records:   seedHealthRecords(),
		reports:   seedReports(),
	}
}

func (r *MemoryUserDataRepo) ListPatients() []models.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Patient, len(r.patients))
	copy(out, r.patients)
	return out
}

func (r *MemoryUserDataRepo) GetPatient(id string) (*models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if p.ID == id {
			patient := p
			return &patient, nil
		}
	}
	return nil, fmt.Errorf("patient %s not found", id)
}

func (r *MemoryUserDataRepo) ListAddresses() []models.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Address, len(r.addresses))
	copy(out, r.addresses)
	return out
}

func (r *MemoryUserDataRepo) GetAddress(id string) (*models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.addresses {
		if a.ID == id {
			addr := a
			return &addr, nil
		}
	}
	return nil, fmt.Errorf("address %s not found", id)
}

func (r *MemoryUserDataRepo) DefaultAddress() *models.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.addresses {
		if a.IsDefault {
			addr := a
			return &addr
		}
	}
	return nil
}

func (r *MemoryUserDataRepo) ListCoupons() []models.Coupon {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Coupon, len(r.coupons))
	copy(out, r.coupons)
	return out
}

func (r *MemoryUserDataRepo) GetCoupon(id string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.coupons {
		if c.ID == id {
			coupon := c
			return &coupon, nil
		}
	}
	return nil, fmt.Errorf("coupon %s not found", id)
}

func (r *MemoryUserDataRepo) ListHealthRecords() []models.NursingRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.NursingRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *MemoryUserDataRepo) ListReports() []models.MedicalReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.MedicalReport, len(r.reports))
	copy(out, r.reports)
	return out
}
