package calendar

import (
	"testing"
	"time"

	"fitsched/models"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNormalizeRecords_DropsRecordsWithoutDates(t *testing.T) {
	confirmed := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 1, CounterpartyID: 7, ConfirmedDate: timePtr(confirmed), DurationMinutes: 60},
		{ID: 2, CounterpartyID: 8, ConfirmedDate: nil, DurationMinutes: 60},
	}
	sessions := []models.Session{
		{ID: 3, CounterpartyID: 9, ScheduledDate: nil, DurationMinutes: 45},
	}

	items := NormalizeRecords(bookings, sessions)

	if len(items) != 1 {
		t.Fatalf("NormalizeRecords() returned %d items, want 1", len(items))
	}
	if items[0].ID != 1 || items[0].Kind != models.KindBooking {
		t.Errorf("NormalizeRecords() kept item %+v, want booking id=1", items[0])
	}
}

func TestNormalizeRecords_NameResolutionOrder(t *testing.T) {
	confirmed := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{
			ID: 1, ConfirmedDate: timePtr(confirmed), DurationMinutes: 60,
			CounterpartyName:    "Denormalized Name",
			CounterpartyProfile: &models.CounterpartyProfile{Name: "Profile Name"},
		},
		{
			ID: 2, ConfirmedDate: timePtr(confirmed.Add(time.Hour)), DurationMinutes: 60,
			CounterpartyProfile: &models.CounterpartyProfile{Name: "Profile Name"},
		},
		{
			ID: 3, ConfirmedDate: timePtr(confirmed.Add(2 * time.Hour)), DurationMinutes: 60,
		},
	}

	items := NormalizeRecords(bookings, nil)

	if len(items) != 3 {
		t.Fatalf("NormalizeRecords() returned %d items, want 3", len(items))
	}
	want := []string{"Denormalized Name", "Profile Name", placeholderName}
	for i, name := range want {
		if items[i].CounterpartyName != name {
			t.Errorf("item %d name = %q, want %q", i, items[i].CounterpartyName, name)
		}
	}
}

func TestNormalizeRecords_CanonicalFields(t *testing.T) {
	scheduled := time.Date(2024, 6, 4, 17, 30, 0, 0, time.UTC)
	sessions := []models.Session{
		{
			ID:              12,
			CounterpartyID:  44,
			CounterpartyName: "Alex",
			SessionType:     "strength",
			ScheduledDate:   timePtr(scheduled),
			DurationMinutes: 45,
			Location:        "Studio B",
		},
	}

	items := NormalizeRecords(nil, sessions)

	if len(items) != 1 {
		t.Fatalf("NormalizeRecords() returned %d items, want 1", len(items))
	}
	it := items[0]
	if it.Kind != models.KindSession {
		t.Errorf("Kind = %v, want session", it.Kind)
	}
	if it.CounterpartyID != 44 || it.SessionType != "strength" || it.Location != "Studio B" {
		t.Errorf("unexpected canonical fields: %+v", it)
	}
	if !it.StartTime.Equal(scheduled) || it.DurationMinutes != 45 {
		t.Errorf("time fields mismatch: %+v", it)
	}
	if !it.EndTime().Equal(scheduled.Add(45 * time.Minute)) {
		t.Errorf("EndTime() = %v, want %v", it.EndTime(), scheduled.Add(45*time.Minute))
	}
}
