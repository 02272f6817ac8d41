package models

import "time"

// ItemKind distinguishes the two record paths an appointment can come from.
type ItemKind string

const (
	KindBooking ItemKind = "booking"
	KindSession ItemKind = "session"
)

// CalendarItem is the canonical shape both record kinds are normalized into.
// It is derived on every load and never persisted.
type CalendarItem struct {
	Kind             ItemKind  `json:"kind"`
	ID               int       `json:"id"`
	CounterpartyID   int       `json:"counterpartyId"`
	CounterpartyName string    `json:"counterpartyName"`
	SessionType      string    `json:"sessionType"`
	StartTime        time.Time `json:"startTime"`
	DurationMinutes  int       `json:"durationMinutes"`
	Location         string    `json:"location,omitempty"`
}

// EndTime returns the item's end instant.
func (it CalendarItem) EndTime() time.Time {
	return it.StartTime.Add(time.Duration(it.DurationMinutes) * time.Minute)
}

// DayBucket holds the items falling on one local calendar date,
// ordered ascending by start time.
type DayBucket struct {
	Date  time.Time      `json:"date"`
	Items []CalendarItem `json:"items"`
}

// WeekWindow is a 7-day view anchored at AnchorStart.
// Days[i].Date == AnchorStart + i days.
type WeekWindow struct {
	AnchorStart time.Time   `json:"anchorStart"`
	Days        []DayBucket `json:"days"`
}
