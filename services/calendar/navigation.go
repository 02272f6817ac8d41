package calendar

import "time"

// WeekNavigator moves the week anchor around without touching fetched
// data. All operations are pure date arithmetic; a refetch is always a
// separate, caller-triggered action.
type WeekNavigator struct {
	anchorStart time.Time
	weekStart   time.Weekday
	now         func() time.Time
}

// NewWeekNavigator returns a navigator anchored at the week containing anchor.
func NewWeekNavigator(anchor time.Time, weekStart time.Weekday) *WeekNavigator {
	return &WeekNavigator{
		anchorStart: WeekAnchor(anchor, weekStart),
		weekStart:   weekStart,
		now:         time.Now,
	}
}

// AnchorStart returns the first date of the current 7-day window.
func (n *WeekNavigator) AnchorStart() time.Time {
	return n.anchorStart
}

// Next advances the window by seven days.
func (n *WeekNavigator) Next() {
	n.anchorStart = n.anchorStart.AddDate(0, 0, 7)
}

// Previous moves the window back by seven days.
func (n *WeekNavigator) Previous() {
	n.anchorStart = n.anchorStart.AddDate(0, 0, -7)
}

// GoToCurrent re-anchors at the week containing now.
func (n *WeekNavigator) GoToCurrent() {
	n.anchorStart = WeekAnchor(n.now().In(n.anchorStart.Location()), n.weekStart)
}

// IsCurrentWeek reports whether the window contains now.
func (n *WeekNavigator) IsCurrentWeek() bool {
	current := WeekAnchor(n.now().In(n.anchorStart.Location()), n.weekStart)
	return n.anchorStart.Equal(current)
}
