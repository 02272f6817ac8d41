package models

// Apply statuses returned by the assignment service for one entry.
const (
	ApplyStatusApplied  = "applied"
	ApplyStatusRejected = "rejected"
)

// ApplyResult is the assignment service's verdict on a single apply call.
type ApplyResult struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// CommitOutcome records how one selected entry fared during a batch commit.
type CommitOutcome struct {
	RequestID int    `json:"requestId"`
	Applied   bool   `json:"applied"`
	Reason    string `json:"reason,omitempty"`
}

// CommitSummary aggregates per-entry outcomes after a full batch pass.
type CommitSummary struct {
	AppliedCount   int             `json:"appliedCount"`
	FailedCount    int             `json:"failedCount"`
	AppliedDetails []CommitOutcome `json:"appliedDetails"`
	FailedDetails  []CommitOutcome `json:"failedDetails"`
}

// Conflict reasons surfaced by the pre-commit check.
const (
	ConflictReasonOverlap     = "direct time overlap"
	ConflictReasonBreakBefore = "insufficient break before"
	ConflictReasonBreakAfter  = "insufficient break after"
)

// ConflictingEvent describes the other side of a detected conflict,
// which is either another proposed entry or an already-confirmed item.
type ConflictingEvent struct {
	Kind             string `json:"kind"` // "proposed" or ItemKind values
	Label            string `json:"label"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	RequestID        int    `json:"requestId,omitempty"`
	CounterpartyName string `json:"counterpartyName,omitempty"`
}

// EntryConflict is one advisory finding. The trainer may still commit
// after an explicit confirmation; the service-side apply re-validates.
type EntryConflict struct {
	Entry           ProposedEntry    `json:"entry"`
	ConflictingWith ConflictingEvent `json:"conflictingWith"`
	Reason          string           `json:"reason"`
}

// BatchConflict is the assignment service's remote availability finding
// for one proposed entry.
type BatchConflict struct {
	Entry           ProposedEntry `json:"entry"`
	ConflictReasons []string      `json:"conflict_reasons"`
}
