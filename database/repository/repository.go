// Package repository defines the data-access interfaces for the marketplace.
// All implementations are seeded in-memory stores: the platform's catalog,
// roster, and order book are mock data and nothing is persisted.
package repository

import "carebridge/models"

// CatalogRepository serves the service catalog shown to patients.
type CatalogRepository interface {
	ListServices() []models.Service
	GetService(id string) (*models.Service, error)
	ListCategories() []models.Category
	ListCities() []models.City
}

// ProviderRepository serves the nurse roster.
type ProviderRepository interface {
	ListNurses() []models.Nurse
	GetNurse(id string) (*models.Nurse, error)
	AddNurse(n models.Nurse) error
	SetCertStatus(id string, status models.CertStatus) error
}

// OrderFilter narrows an order listing. Empty fields match everything.
type OrderFilter struct {
	Status  models.OrderStatus
	Keyword string // substring of order ID or service name
	NurseID string
}

// OrderRepository serves and mutates the order book.
type OrderRepository interface {
	List(filter OrderFilter) []models.Order
	Get(id string) (*models.Order, error)
	Create(o models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	Cancel(id, reason string) error
	AssignNurse(orderID string, nurse models.Nurse) error
	AttachRecord(orderID string, rec models.NursingRecord) error
}

// UserDataRepository serves the booking-side user data: patients, addresses,
// coupons, and the care history.
type UserDataRepository interface {
	ListPatients() []models.Patient
	GetPatient(id string) (*models.Patient, error)
	ListAddresses() []models.Address
	GetAddress(id string) (*models.Address, error)
	DefaultAddress() *models.Address
	ListCoupons() []models.Coupon
	GetCoupon(id string) (*models.Coupon, error)
	ListHealthRecords() []models.NursingRecord
	ListReports() []models.MedicalReport
}
