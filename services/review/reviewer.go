package review

import (
	"context"
	"fmt"
	"time"

	"fitsched/models"
	"fitsched/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession fetches a fresh proposed schedule and opens a review
// session over it. The selection always starts empty: proposal entries
// are superseded wholesale by each fetch, so selections never survive one.
func (svc *DefaultReviewService) StartSession(ctx context.Context, trainerID string) (*models.ReviewSession, error) {
	logger := utils.GetLogger()

	schedule, err := svc.Assignment.GetOptimalSchedule(ctx, trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch proposed schedule: %w", err)
	}

	session := &models.ReviewSession{
		SessionID:  uuid.New().String(),
		TrainerID:  trainerID,
		Proposed:   schedule.ProposedEntries,
		Selected:   []int{},
		Statistics: schedule.Statistics,
		CreatedAt:  time.Now(),
	}
	if err := svc.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("review session started",
		zap.String("sessionID", session.SessionID),
		zap.String("trainerID", trainerID),
		zap.Int("proposedEntries", len(session.Proposed)))
	return session, nil
}

// GetSession returns the current state of a review session.
func (svc *DefaultReviewService) GetSession(ctx context.Context, sessionID string) (*models.ReviewSession, error) {
	return svc.Sessions.Load(ctx, sessionID)
}

// Toggle flips a requestId's membership in the selection. A requestId no
// longer present in the proposal list (a stale toggle after a refetch)
// is ignored rather than treated as an error.
func (svc *DefaultReviewService) Toggle(ctx context.Context, sessionID string, requestID int) (*models.ReviewSession, error) {
	session, err := svc.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.HasProposal(requestID) {
		return session, nil
	}

	if session.IsSelected(requestID) {
		kept := session.Selected[:0]
		for _, id := range session.Selected {
			if id != requestID {
				kept = append(kept, id)
			}
		}
		session.Selected = kept
	} else {
		session.Selected = append(session.Selected, requestID)
	}

	if err := svc.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectAll marks every currently proposed requestId for commit.
func (svc *DefaultReviewService) SelectAll(ctx context.Context, sessionID string) (*models.ReviewSession, error) {
	session, err := svc.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Selected = make([]int, 0, len(session.Proposed))
	for _, e := range session.Proposed {
		session.Selected = append(session.Selected, e.RequestID)
	}

	if err := svc.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeselectAll empties the selection.
func (svc *DefaultReviewService) DeselectAll(ctx context.Context, sessionID string) (*models.ReviewSession, error) {
	session, err := svc.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Selected = []int{}

	if err := svc.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Stats aggregates over the current proposal list only, never history.
// Counts and hours are recomputed locally; utilization and gap figures
// come from the assignment service's statistics for this fetch.
func (svc *DefaultReviewService) Stats(ctx context.Context, sessionID string) (*models.ScheduleStatistics, error) {
	session, err := svc.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	stats := DeriveStats(session.Proposed, session.Statistics)
	return &stats, nil
}

// DeriveStats recomputes count and hour aggregates from the proposal list,
// keeping the service-reported utilization and gap figures.
func DeriveStats(proposed []models.ProposedEntry, fetched models.ScheduleStatistics) models.ScheduleStatistics {
	stats := fetched
	stats.ScheduledCount = len(proposed)
	if stats.TotalRequests < len(proposed) {
		stats.TotalRequests = len(proposed)
	}

	var minutes int
	for _, e := range proposed {
		minutes += e.DurationMinutes
	}
	stats.TotalHours = float64(minutes) / 60.0
	return stats
}
