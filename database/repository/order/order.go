package order

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"carebridge/database/repository"
	"carebridge/models"
)

// MemoryOrderRepo is the seeded in-memory order book.
type MemoryOrderRepo struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewMemoryOrderRepo returns an order book seeded with sample orders.
func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{orders: seedOrders()}
}

// List returns orders matching the filter, newest first.
func (r *MemoryOrderRepo) List(filter repository.OrderFilter) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Order
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.NurseID != "" && o.NurseID != filter.NurseID {
			continue
		}
		if filter.Keyword != "" &&
			!strings.Contains(o.ID, filter.Keyword) &&
			!strings.Contains(o.ServiceName, filter.Keyword) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreateTime.After(out[j].CreateTime)
	})
	return out
}

func (r *MemoryOrderRepo) Get(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			ord := o
			return &ord, nil
		}
	}
	return nil, fmt.Errorf("order %s not found", id)
}

func (r *MemoryOrderRepo) Create(o models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.ID == o.ID {
			return fmt.Errorf("order %s already exists", o.ID)
		}
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *MemoryOrderRepo) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order %s not found", id)
}

// Cancel marks an order cancelled with the given reason.
func (r *MemoryOrderRepo) Cancel(id, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = models.OrderCancelled
			r.orders[i].CancelReason = reason
			return nil
		}
	}
	return fmt.Errorf("order %s not found", id)
}

func (r *MemoryOrderRepo) AssignNurse(orderID string, nurse models.Nurse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == orderID {
			n := nurse
			r.orders[i].NurseID = nurse.ID
			r.orders[i].Nurse = &n
			return nil
		}
	}
	return fmt.Errorf("order %s not found", orderID)
}

func (r *MemoryOrderRepo) AttachRecord(orderID string, rec models.NursingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == orderID {
			record := rec
			r.orders[i].NursingRecord = &record
			return nil
		}
	}
	return fmt.Errorf("order %s not found", orderID)
}
