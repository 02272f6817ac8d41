package calendar

import (
	"testing"
	"time"
)

func TestWeekNavigator_NextPreviousRoundTrip(t *testing.T) {
	nav := NewWeekNavigator(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), time.Monday)
	original := nav.AnchorStart()

	nav.Next()
	if want := original.AddDate(0, 0, 7); !nav.AnchorStart().Equal(want) {
		t.Errorf("after Next() anchor = %v, want %v", nav.AnchorStart(), want)
	}

	nav.Previous()
	if !nav.AnchorStart().Equal(original) {
		t.Errorf("Next() then Previous() anchor = %v, want %v", nav.AnchorStart(), original)
	}
}

func TestWeekNavigator_GoToCurrentIsCurrentWeek(t *testing.T) {
	now := time.Date(2024, 6, 19, 14, 0, 0, 0, time.UTC)
	nav := NewWeekNavigator(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Monday)
	nav.now = func() time.Time { return now }

	if nav.IsCurrentWeek() {
		t.Fatal("IsCurrentWeek() = true for a January anchor")
	}

	nav.GoToCurrent()

	if want := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC); !nav.AnchorStart().Equal(want) {
		t.Errorf("GoToCurrent() anchor = %v, want %v", nav.AnchorStart(), want)
	}
	if !nav.IsCurrentWeek() {
		t.Error("IsCurrentWeek() = false after GoToCurrent()")
	}
}

func TestWeekNavigator_SundayConvention(t *testing.T) {
	nav := NewWeekNavigator(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), time.Sunday)

	if want := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC); !nav.AnchorStart().Equal(want) {
		t.Errorf("Sunday-anchored start = %v, want %v", nav.AnchorStart(), want)
	}
}
