package assignment

import (
	"context"

	"fitsched/models"
)

// Client is the boundary to the external optimal-assignment service.
// The service owns the objective function; this side only consumes its
// proposals and applies them one at a time.
type Client interface {
	// GetOptimalSchedule fetches a fresh proposed schedule for the trainer.
	GetOptimalSchedule(ctx context.Context, trainerID string) (*models.OptimalSchedule, error)
	// ApplyProposedEntry commits a single proposed entry. Rejections are
	// returned in the result, not as an error; errors mean transport failure.
	ApplyProposedEntry(ctx context.Context, requestID int) (*models.ApplyResult, error)
	// CheckAvailabilityBatch asks the service to pre-validate entries
	// against its own view of the calendar.
	CheckAvailabilityBatch(ctx context.Context, entries []models.ProposedEntry) ([]models.BatchConflict, error)
}
