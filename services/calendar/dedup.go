package calendar

import (
	"sort"

	"fitsched/models"
)

// bookingKey identifies a real-world event within the raw bookings
// collection.
type bookingKey struct {
	counterpartyID int
	startUnix      int64
}

// CollapseDuplicateBookings removes same-collection duplicates from the
// raw bookings: for bookings sharing (counterpartyId, startTime), only the
// one with the highest id survives, since a later id supersedes earlier
// duplicates. This must run before normalization and bucketing, since a stale
// duplicate that survived into a bucket could otherwise win or lose the
// cross-type merge depending on sort order.
//
// Bookings without a confirmed date pass through untouched; they are
// excluded during normalization anyway.
func CollapseDuplicateBookings(bookings []models.Booking) []models.Booking {
	winners := make(map[bookingKey]int, len(bookings))
	for _, b := range bookings {
		if b.ConfirmedDate == nil {
			continue
		}
		key := bookingKey{b.CounterpartyID, b.ConfirmedDate.UnixNano()}
		if best, ok := winners[key]; !ok || b.ID > best {
			winners[key] = b.ID
		}
	}

	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ConfirmedDate != nil {
			key := bookingKey{b.CounterpartyID, b.ConfirmedDate.UnixNano()}
			if winners[key] != b.ID {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// itemKey identifies a real-world event across the two record kinds
// within one day bucket.
type itemKey struct {
	startUnix int64
	name      string
}

func kindRank(k models.ItemKind) int {
	if k == models.KindSession {
		return 0
	}
	return 1
}

// dedupeBucketItems collapses cross-type collisions within one bucket:
// items sharing (startTime, counterpartyName) merge to a single survivor,
// and a session always beats a booking. The session is the authoritative
// record once an appointment is confirmed through the newer path.
// Candidates are sorted so sessions order before bookings at equal keys;
// ties break by type, never by arrival order. The returned slice is
// ascending by start time.
func dedupeBucketItems(items []models.CalendarItem) []models.CalendarItem {
	if len(items) == 0 {
		return items
	}

	sorted := make([]models.CalendarItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].StartTime.Before(sorted[j].StartTime)
		}
		return kindRank(sorted[i].Kind) < kindRank(sorted[j].Kind)
	})

	seen := make(map[itemKey]struct{}, len(sorted))
	out := make([]models.CalendarItem, 0, len(sorted))
	for _, it := range sorted {
		key := itemKey{it.StartTime.UnixNano(), it.CounterpartyName}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
