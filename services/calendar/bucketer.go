package calendar

import (
	"fmt"
	"strings"
	"time"

	"fitsched/models"
)

// ParseWeekStart maps a configured weekday name to a time.Weekday.
// The client calendar view anchors weeks on Sunday and the trainer
// booking view on Monday; both are instantiations of the same window
// contract, so the start day is a parameter rather than a branch.
func ParseWeekStart(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unknown week start day %q", name)
}

// localMidnight truncates t to its calendar date in t's own location.
func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekAnchor returns the most recent date at or before anchor whose
// weekday matches weekStart, at local midnight.
func WeekAnchor(anchor time.Time, weekStart time.Weekday) time.Time {
	day := localMidnight(anchor)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// BuildWeek computes the 7-day window containing anchor and places every
// item into the bucket matching its local calendar date, in the anchor's
// time zone. Items outside the window are dropped for this render; they
// belong to a different week and reappear when the window moves there.
// Cross-type dedup runs per bucket after placement.
//
// An item at an exact midnight boundary buckets by its local date: the
// timestamp is converted to the viewer's zone before comparison, never
// truncated as a UTC string, which would shift items by a day across
// offsets.
func BuildWeek(anchor time.Time, weekStart time.Weekday, items []models.CalendarItem) models.WeekWindow {
	loc := anchor.Location()
	anchorStart := WeekAnchor(anchor, weekStart)

	days := make([]models.DayBucket, 7)
	index := make(map[time.Time]int, 7)
	for i := range days {
		date := anchorStart.AddDate(0, 0, i)
		days[i] = models.DayBucket{Date: date}
		index[date] = i
	}

	for _, it := range items {
		if it.DurationMinutes <= 0 {
			continue
		}
		localDate := localMidnight(it.StartTime.In(loc))
		if i, ok := index[localDate]; ok {
			days[i].Items = append(days[i].Items, it)
		}
	}

	for i := range days {
		days[i].Items = dedupeBucketItems(days[i].Items)
	}

	return models.WeekWindow{AnchorStart: anchorStart, Days: days}
}
