package review

import (
	"context"

	"fitsched/models"
	"fitsched/utils"

	"go.uber.org/zap"
)

// Commit applies the selected entries one at a time, in proposal-list
// order. A failure on one entry never aborts the rest: each apply stands
// alone, and applying sequentially keeps the service-side re-validation
// running against the calendar as it stands after each prior commit.
// There is no retry; a transport failure counts as a rejection for this
// pass. The session is discarded afterwards regardless of partial
// failure: applied entries are no longer pending, and failed ones need
// a fresh conflict check against the changed calendar.
func (svc *DefaultReviewService) Commit(ctx context.Context, sessionID string) (*models.CommitSummary, error) {
	logger := utils.GetLogger()

	session, err := svc.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &models.CommitSummary{
		AppliedDetails: []models.CommitOutcome{},
		FailedDetails:  []models.CommitOutcome{},
	}

	for _, entry := range session.SelectedEntries() {
		result, err := svc.Assignment.ApplyProposedEntry(ctx, entry.RequestID)
		if err != nil {
			summary.FailedCount++
			summary.FailedDetails = append(summary.FailedDetails, models.CommitOutcome{
				RequestID: entry.RequestID,
				Reason:    err.Error(),
			})
			continue
		}
		if result.Status != models.ApplyStatusApplied {
			summary.FailedCount++
			summary.FailedDetails = append(summary.FailedDetails, models.CommitOutcome{
				RequestID: entry.RequestID,
				Reason:    result.Reason,
			})
			continue
		}
		summary.AppliedCount++
		summary.AppliedDetails = append(summary.AppliedDetails, models.CommitOutcome{
			RequestID: entry.RequestID,
			Applied:   true,
		})
	}

	svc.Sessions.Delete(ctx, sessionID)

	logger.Info("batch commit finished",
		zap.String("sessionID", sessionID),
		zap.Int("applied", summary.AppliedCount),
		zap.Int("failed", summary.FailedCount))
	return summary, nil
}
