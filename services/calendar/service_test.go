package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitsched/models"
)

// mockRecordRepo is a simple mock implementation of the record store.
type mockRecordRepo struct {
	bookings    []models.Booking
	sessions    []models.Session
	bookingsErr error
	sessionsErr error
	listCalls   int
}

func (m *mockRecordRepo) ListBookings(ctx context.Context, trainerID string, status string) ([]models.Booking, error) {
	m.listCalls++
	if m.bookingsErr != nil {
		return nil, m.bookingsErr
	}
	return m.bookings, nil
}

func (m *mockRecordRepo) ListSessions(ctx context.Context, trainerID string, status string) ([]models.Session, error) {
	if m.sessionsErr != nil {
		return nil, m.sessionsErr
	}
	return m.sessions, nil
}

func TestDefaultCalendarService_DegradesWhenOneSourceFails(t *testing.T) {
	scheduled := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	repo := &mockRecordRepo{
		bookingsErr: errors.New("store unavailable"),
		sessions: []models.Session{
			{ID: 1, CounterpartyID: 7, ScheduledDate: timePtr(scheduled), DurationMinutes: 60, Status: models.StatusConfirmed},
		},
	}
	svc := NewDefaultCalendarService(repo)

	window, err := svc.WeekView(context.Background(), "trainer-1", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Monday, true)
	if err != nil {
		t.Fatalf("WeekView() error = %v", err)
	}

	if len(window.Days[0].Items) != 1 {
		t.Fatalf("Monday bucket has %d items, want 1 (sessions still render)", len(window.Days[0].Items))
	}
	if window.Days[0].Items[0].Kind != models.KindSession {
		t.Errorf("item kind = %v, want session", window.Days[0].Items[0].Kind)
	}
}

func TestDefaultCalendarService_NavigationDoesNotRefetch(t *testing.T) {
	repo := &mockRecordRepo{
		bookings: []models.Booking{
			{ID: 1, CounterpartyID: 7, ConfirmedDate: timePtr(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)), DurationMinutes: 60},
		},
	}
	svc := NewDefaultCalendarService(repo)
	ctx := context.Background()

	if _, err := svc.WeekView(ctx, "trainer-1", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Monday, true); err != nil {
		t.Fatalf("WeekView() error = %v", err)
	}
	fetches := repo.listCalls

	// Moving the window forward and back recomputes from the snapshot.
	if _, err := svc.WeekView(ctx, "trainer-1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), time.Monday, false); err != nil {
		t.Fatalf("WeekView() error = %v", err)
	}
	if _, err := svc.WeekView(ctx, "trainer-1", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Monday, false); err != nil {
		t.Fatalf("WeekView() error = %v", err)
	}

	if repo.listCalls != fetches {
		t.Errorf("navigation triggered %d extra fetches, want 0", repo.listCalls-fetches)
	}
}

func TestDefaultCalendarService_PipelineOrder(t *testing.T) {
	// Three duplicate bookings plus a colliding session: the intra-booking
	// collapse must keep only id=9 before the cross-type merge lets the
	// session win.
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	repo := &mockRecordRepo{
		bookings: []models.Booking{
			{ID: 5, CounterpartyID: 7, CounterpartyName: "Alex", ConfirmedDate: timePtr(start), DurationMinutes: 60},
			{ID: 9, CounterpartyID: 7, CounterpartyName: "Alex", ConfirmedDate: timePtr(start), DurationMinutes: 60},
			{ID: 7, CounterpartyID: 7, CounterpartyName: "Alex", ConfirmedDate: timePtr(start), DurationMinutes: 60},
		},
		sessions: []models.Session{
			{ID: 3, CounterpartyID: 7, CounterpartyName: "Alex", ScheduledDate: timePtr(start), DurationMinutes: 60},
		},
	}
	svc := NewDefaultCalendarService(repo)

	window, err := svc.WeekView(context.Background(), "trainer-1", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Monday, true)
	if err != nil {
		t.Fatalf("WeekView() error = %v", err)
	}

	monday := window.Days[0]
	if len(monday.Items) != 1 {
		t.Fatalf("Monday bucket has %d items, want 1", len(monday.Items))
	}
	if monday.Items[0].Kind != models.KindSession {
		t.Errorf("surviving item kind = %v, want session", monday.Items[0].Kind)
	}
}

func TestDefaultCalendarService_ConfirmedItems(t *testing.T) {
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	repo := &mockRecordRepo{
		bookings: []models.Booking{
			{ID: 1, CounterpartyID: 7, ConfirmedDate: timePtr(start), DurationMinutes: 60},
		},
		sessions: []models.Session{
			{ID: 2, CounterpartyID: 8, ScheduledDate: timePtr(start.Add(2 * time.Hour)), DurationMinutes: 45},
		},
	}
	svc := NewDefaultCalendarService(repo)

	items, err := svc.ConfirmedItems(context.Background(), "trainer-1")
	if err != nil {
		t.Fatalf("ConfirmedItems() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("ConfirmedItems() returned %d items, want 2", len(items))
	}
}
