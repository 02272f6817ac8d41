package calendar

import (
	"context"
	"sync"
	"time"

	recordsRepo "fitsched/database/repository/records"
	"fitsched/models"
	"fitsched/utils"

	"go.uber.org/zap"
)

// DefaultCalendarService implements CalendarService over the record store.
type DefaultCalendarService struct {
	Records recordsRepo.CalendarRecordRepository

	mu          sync.Mutex
	snapshots   map[string][]models.CalendarItem
	generations map[string]uint64
}

// NewDefaultCalendarService returns a calendar service backed by repo.
func NewDefaultCalendarService(repo recordsRepo.CalendarRecordRepository) *DefaultCalendarService {
	return &DefaultCalendarService{
		Records:     repo,
		snapshots:   make(map[string][]models.CalendarItem),
		generations: make(map[string]uint64),
	}
}

type bookingsResult struct {
	bookings []models.Booking
	err      error
}

type sessionsResult struct {
	sessions []models.Session
	err      error
}

// refresh fetches both sources concurrently and runs the reconciliation
// pipeline: intra-booking dedup, then normalization. Bucketing and the
// cross-type merge happen per render in BuildWeek. A failed source
// degrades to an empty collection so the other still renders.
//
// Each call takes a generation number; if a newer refresh was requested
// while this one was in flight, its result is returned to the caller but
// not cached, so a stale fetch can never silently revert newer state.
func (svc *DefaultCalendarService) refresh(ctx context.Context, viewerID string) []models.CalendarItem {
	logger := utils.GetLogger()

	svc.mu.Lock()
	svc.generations[viewerID]++
	gen := svc.generations[viewerID]
	svc.mu.Unlock()

	bCh := make(chan bookingsResult, 1)
	sCh := make(chan sessionsResult, 1)
	go func() {
		bookings, err := svc.Records.ListBookings(ctx, viewerID, models.StatusConfirmed)
		bCh <- bookingsResult{bookings, err}
	}()
	go func() {
		sessions, err := svc.Records.ListSessions(ctx, viewerID, models.StatusConfirmed)
		sCh <- sessionsResult{sessions, err}
	}()

	bRes := <-bCh
	sRes := <-sCh
	if bRes.err != nil {
		logger.Warn("bookings fetch failed, rendering sessions only",
			zap.String("viewerID", viewerID), zap.Error(bRes.err))
		bRes.bookings = nil
	}
	if sRes.err != nil {
		logger.Warn("sessions fetch failed, rendering bookings only",
			zap.String("viewerID", viewerID), zap.Error(sRes.err))
		sRes.sessions = nil
	}

	items := NormalizeRecords(CollapseDuplicateBookings(bRes.bookings), sRes.sessions)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.generations[viewerID] == gen {
		svc.snapshots[viewerID] = items
	}
	return items
}

func (svc *DefaultCalendarService) snapshot(viewerID string) ([]models.CalendarItem, bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	items, ok := svc.snapshots[viewerID]
	return items, ok
}

// WeekView implements CalendarService.
func (svc *DefaultCalendarService) WeekView(ctx context.Context, viewerID string, anchor time.Time, weekStart time.Weekday, refresh bool) (*models.WeekWindow, error) {
	var items []models.CalendarItem
	if refresh {
		items = svc.refresh(ctx, viewerID)
	} else {
		cached, ok := svc.snapshot(viewerID)
		if !ok {
			cached = svc.refresh(ctx, viewerID)
		}
		items = cached
	}

	window := BuildWeek(anchor, weekStart, items)
	return &window, nil
}

// ConfirmedItems implements CalendarService.
func (svc *DefaultCalendarService) ConfirmedItems(ctx context.Context, viewerID string) ([]models.CalendarItem, error) {
	return svc.refresh(ctx, viewerID), nil
}
