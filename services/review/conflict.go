package review

import (
	"context"
	"time"

	"fitsched/models"
	"fitsched/utils"

	"go.uber.org/zap"
)

// timeRange is a half-open interval used for overlap checks.
type timeRange struct {
	start time.Time
	end   time.Time
}

func (r timeRange) expand(by time.Duration) timeRange {
	return timeRange{start: r.start.Add(-by), end: r.end.Add(by)}
}

func (r timeRange) overlaps(other timeRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func entryRange(e models.ProposedEntry) timeRange {
	return timeRange{start: e.StartTime, end: e.EndTime}
}

func itemRange(it models.CalendarItem) timeRange {
	return timeRange{start: it.StartTime, end: it.EndTime()}
}

// conflictReason classifies a finding between two expanded-overlapping
// ranges: a raw overlap is a direct clash; otherwise the other event sits
// too close before or after the entry.
func conflictReason(entry, other timeRange) string {
	if entry.overlaps(other) {
		return models.ConflictReasonOverlap
	}
	if !other.end.After(entry.start) {
		return models.ConflictReasonBreakBefore
	}
	return models.ConflictReasonBreakAfter
}

func proposedEvent(e models.ProposedEntry) models.ConflictingEvent {
	return models.ConflictingEvent{
		Kind:             "proposed",
		Label:            e.SessionType,
		StartTime:        e.StartTime.Format(time.RFC3339),
		EndTime:          e.EndTime.Format(time.RFC3339),
		RequestID:        e.RequestID,
		CounterpartyName: e.CounterpartyName,
	}
}

func confirmedEvent(it models.CalendarItem) models.ConflictingEvent {
	return models.ConflictingEvent{
		Kind:             string(it.Kind),
		Label:            it.SessionType,
		StartTime:        it.StartTime.Format(time.RFC3339),
		EndTime:          it.EndTime().Format(time.RFC3339),
		CounterpartyName: it.CounterpartyName,
	}
}

// FindConflicts checks every entry against the other entries and the
// confirmed calendar. Each range is expanded by half the minimum break on
// both sides; two events conflict when their expanded ranges overlap.
// Findings are advisory: the caller may proceed after explicit
// confirmation, since the service-side apply re-validates independently.
func FindConflicts(entries []models.ProposedEntry, confirmed []models.CalendarItem, minBreakMinutes int) []models.EntryConflict {
	halfBreak := time.Duration(minBreakMinutes) * time.Minute / 2

	var conflicts []models.EntryConflict
	for i, entry := range entries {
		er := entryRange(entry)
		expanded := er.expand(halfBreak)

		for j, other := range entries {
			if i == j {
				continue
			}
			or := entryRange(other)
			if expanded.overlaps(or.expand(halfBreak)) {
				conflicts = append(conflicts, models.EntryConflict{
					Entry:           entry,
					ConflictingWith: proposedEvent(other),
					Reason:          conflictReason(er, or),
				})
			}
		}

		for _, item := range confirmed {
			ir := itemRange(item)
			if expanded.overlaps(ir.expand(halfBreak)) {
				conflicts = append(conflicts, models.EntryConflict{
					Entry:           entry,
					ConflictingWith: confirmedEvent(item),
					Reason:          conflictReason(er, ir),
				})
			}
		}
	}
	return conflicts
}

// CheckConflicts implements ReviewService. With fullList set it
// pre-checks the whole proposal list instead of the selection. Local
// findings are merged with the assignment service's own availability
// check; if the remote check fails the local findings still stand.
func (svc *DefaultReviewService) CheckConflicts(ctx context.Context, sessionID string, fullList bool, minBreakMinutes int) ([]models.EntryConflict, error) {
	logger := utils.GetLogger()

	session, err := svc.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := session.SelectedEntries()
	if fullList {
		entries = session.Proposed
	}
	if len(entries) == 0 {
		return nil, nil
	}

	confirmed, err := svc.Calendar.ConfirmedItems(ctx, session.TrainerID)
	if err != nil {
		logger.Warn("confirmed calendar unavailable for conflict check",
			zap.String("trainerID", session.TrainerID), zap.Error(err))
		confirmed = nil
	}

	conflicts := FindConflicts(entries, confirmed, minBreakMinutes)

	remote, err := svc.Assignment.CheckAvailabilityBatch(ctx, entries)
	if err != nil {
		logger.Warn("remote availability check failed, using local findings only",
			zap.String("sessionID", sessionID), zap.Error(err))
		return conflicts, nil
	}
	for _, rc := range remote {
		for _, reason := range rc.ConflictReasons {
			conflicts = append(conflicts, models.EntryConflict{
				Entry: rc.Entry,
				ConflictingWith: models.ConflictingEvent{
					Kind:  "service",
					Label: "assignment service availability check",
				},
				Reason: reason,
			})
		}
	}
	return conflicts, nil
}
