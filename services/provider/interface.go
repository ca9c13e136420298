package provider

import (
	"context"

	"carebridge/models"
)

// TaskBoard is what the workbench home screen renders.
type TaskBoard struct {
	Available []models.Order `json:"available"` // unassigned, waiting acceptance
	Mine      []models.Order `json:"mine"`      // assigned to this provider
}

// TaskOffer is an opened task with its live grab window.
type TaskOffer struct {
	Order            models.Order `json:"order"`
	RemainingSeconds int          `json:"remainingSeconds"`
	Clock            string       `json:"clock"` // mm:ss
}

// RosterService serves the nurse roster shown to patients.
type RosterService interface {
	ListNurses() []models.Nurse
	GetNurse(id string) (*models.Nurse, error)
}

// WorkbenchService drives the provider's task pool: browsing, opening a
// task (which starts the grab window), and grabbing it before the window
// closes.
type WorkbenchService interface {
	TaskBoard(ctx context.Context, providerID string) (*TaskBoard, error)
	OpenTask(ctx context.Context, providerID, orderID string) (*TaskOffer, error)
	GrabTask(ctx context.Context, providerID, orderID string) (*models.Order, error)
}
