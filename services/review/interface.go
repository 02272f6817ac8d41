package review

import (
	"context"

	"fitsched/models"
	"fitsched/services/assignment"
	"fitsched/services/calendar"
)

// ReviewService manages one trainer's proposal review flow: fetching a
// proposed schedule, selecting entries, pre-checking conflicts, and
// committing the selection as individual applies.
type ReviewService interface {
	StartSession(ctx context.Context, trainerID string) (*models.ReviewSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.ReviewSession, error)
	Toggle(ctx context.Context, sessionID string, requestID int) (*models.ReviewSession, error)
	SelectAll(ctx context.Context, sessionID string) (*models.ReviewSession, error)
	DeselectAll(ctx context.Context, sessionID string) (*models.ReviewSession, error)
	Stats(ctx context.Context, sessionID string) (*models.ScheduleStatistics, error)
	// CheckConflicts validates the selection (or the full proposal list)
	// against the trainer's confirmed calendar. Findings are advisory.
	CheckConflicts(ctx context.Context, sessionID string, fullList bool, minBreakMinutes int) ([]models.EntryConflict, error)
	// Commit applies the selected entries sequentially and independently,
	// then discards the session. Callers must refetch afterwards.
	Commit(ctx context.Context, sessionID string) (*models.CommitSummary, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Assignment assignment.Client
	Calendar   calendar.CalendarService
	Sessions   SessionStore
}
