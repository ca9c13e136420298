package handlers

import (
	"carebridge/database/repository"
	"carebridge/services/booking"
	"carebridge/services/certification"
	"carebridge/services/completion"
	"carebridge/services/intelligence"
	"carebridge/services/provider"
	"carebridge/services/storage"
	"carebridge/services/user"

	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint dependencies into one struct.
type HandlerBundle struct {
	Auth          user.AuthService
	UserData      user.UserDataService
	Catalog       repository.CatalogRepository
	Orders        repository.OrderRepository
	Roster        provider.RosterService
	Workbench     provider.WorkbenchService
	Booking       booking.BookingFlowService
	Certification certification.CertificationService
	Completion    completion.CompletionService
	Advisor       intelligence.AdvisorService
	Storage       storage.StorageService
	Logger        *zap.Logger
}
