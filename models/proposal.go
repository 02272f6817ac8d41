package models

import "time"

// ProposedEntry is one algorithm-suggested time assignment from the
// assignment service. Entries are recreated on every fetch and never
// mutated locally.
type ProposedEntry struct {
	RequestID        int       `json:"request_id"`
	CounterpartyName string    `json:"counterparty_name"`
	SessionType      string    `json:"session_type"`
	TrainingType     string    `json:"training_type,omitempty"`
	DurationMinutes  int       `json:"duration_minutes"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	SlotIDs          []int     `json:"slot_ids"`
	PriorityScore    float64   `json:"priority_score"`
}

// ScheduleStatistics aggregates a proposed schedule for display.
type ScheduleStatistics struct {
	TotalRequests   int     `json:"totalRequests"`
	ScheduledCount  int     `json:"scheduledCount"`
	TotalHours      float64 `json:"totalHours"`
	UtilizationRate float64 `json:"utilizationRate"`
	GapsMinimized   int     `json:"gapsMinimized"`
}

// OptimalSchedule is the assignment service's response for one trainer.
type OptimalSchedule struct {
	ProposedEntries []ProposedEntry    `json:"proposed_entries"`
	Statistics      ScheduleStatistics `json:"statistics"`
}
