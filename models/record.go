package models

import "time"

// Record status values used by the booking/session store.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// CounterpartyProfile is the nested profile attached to a raw record when
// the store did not denormalize the counterparty name onto the record itself.
type CounterpartyProfile struct {
	Name string `bson:"name" json:"name"`
}

// Booking is a legacy-path confirmed appointment record as the store returns it.
// ConfirmedDate is nil for bookings that have not been confirmed yet.
type Booking struct {
	ID                  int                  `bson:"id" json:"id"`
	TrainerID           string               `bson:"trainer_id" json:"trainer_id"`
	CounterpartyID      int                  `bson:"counterparty_id" json:"counterparty_id"`
	CounterpartyName    string               `bson:"counterparty_name,omitempty" json:"counterparty_name,omitempty"`
	CounterpartyProfile *CounterpartyProfile `bson:"counterparty_profile,omitempty" json:"counterparty_profile,omitempty"`
	SessionType         string               `bson:"session_type" json:"session_type"`
	ConfirmedDate       *time.Time           `bson:"confirmed_date,omitempty" json:"confirmed_date,omitempty"`
	DurationMinutes     int                  `bson:"duration_minutes" json:"duration_minutes"`
	Location            string               `bson:"location,omitempty" json:"location,omitempty"`
	Status              string               `bson:"status" json:"status"`
}

// Session is a newer-path confirmed appointment record. A session is
// authoritative over a booking at the same time and counterparty.
type Session struct {
	ID                  int                  `bson:"id" json:"id"`
	TrainerID           string               `bson:"trainer_id" json:"trainer_id"`
	CounterpartyID      int                  `bson:"counterparty_id" json:"counterparty_id"`
	CounterpartyName    string               `bson:"counterparty_name,omitempty" json:"counterparty_name,omitempty"`
	CounterpartyProfile *CounterpartyProfile `bson:"counterparty_profile,omitempty" json:"counterparty_profile,omitempty"`
	SessionType         string               `bson:"session_type" json:"session_type"`
	ScheduledDate       *time.Time           `bson:"scheduled_date,omitempty" json:"scheduled_date,omitempty"`
	DurationMinutes     int                  `bson:"duration_minutes" json:"duration_minutes"`
	Location            string               `bson:"location,omitempty" json:"location,omitempty"`
	Status              string               `bson:"status" json:"status"`
}
