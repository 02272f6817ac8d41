package calendar

import (
	"context"
	"time"

	"fitsched/models"
)

// CalendarService reconciles the two record streams into weekly views.
type CalendarService interface {
	// WeekView returns the reconciled 7-day window containing anchor.
	// With refresh set it refetches both sources first; otherwise it
	// recomputes from the viewer's last fetched snapshot, so navigation
	// never triggers a fetch.
	WeekView(ctx context.Context, viewerID string, anchor time.Time, weekStart time.Weekday, refresh bool) (*models.WeekWindow, error)
	// ConfirmedItems returns the viewer's deduplicated confirmed items,
	// refetching from the store. Used by the conflict pre-check.
	ConfirmedItems(ctx context.Context, viewerID string) ([]models.CalendarItem, error)
}
