package calendar

import (
	"fitsched/models"
)

// placeholderName is substituted when a record carries neither a
// denormalized counterparty name nor a nested profile name.
const placeholderName = "Unknown"

// resolveName applies the fallback chain: denormalized name first, then
// the nested profile name, then the placeholder. Upstream records may
// carry any one of these, so the order must not change.
func resolveName(denormalized string, profile *models.CounterpartyProfile) string {
	if denormalized != "" {
		return denormalized
	}
	if profile != nil && profile.Name != "" {
		return profile.Name
	}
	return placeholderName
}

// NormalizeRecords converts raw bookings and sessions into canonical
// calendar items. Records without a nominal timestamp are excluded; an
// absent date is a known input state (e.g. an unconfirmed booking), not
// an error. The transform is pure.
func NormalizeRecords(bookings []models.Booking, sessions []models.Session) []models.CalendarItem {
	items := make([]models.CalendarItem, 0, len(bookings)+len(sessions))

	for _, b := range bookings {
		if b.ConfirmedDate == nil {
			continue
		}
		items = append(items, models.CalendarItem{
			Kind:             models.KindBooking,
			ID:               b.ID,
			CounterpartyID:   b.CounterpartyID,
			CounterpartyName: resolveName(b.CounterpartyName, b.CounterpartyProfile),
			SessionType:      b.SessionType,
			StartTime:        *b.ConfirmedDate,
			DurationMinutes:  b.DurationMinutes,
			Location:         b.Location,
		})
	}

	for _, s := range sessions {
		if s.ScheduledDate == nil {
			continue
		}
		items = append(items, models.CalendarItem{
			Kind:             models.KindSession,
			ID:               s.ID,
			CounterpartyID:   s.CounterpartyID,
			CounterpartyName: resolveName(s.CounterpartyName, s.CounterpartyProfile),
			SessionType:      s.SessionType,
			StartTime:        *s.ScheduledDate,
			DurationMinutes:  s.DurationMinutes,
			Location:         s.Location,
		})
	}

	return items
}
