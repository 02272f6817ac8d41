package models

import "time"

// ReviewSession holds one trainer's fetched proposal list and their
// selection between fetch and commit. It is owned by a single reviewing
// session and cached under its SessionID; a new fetch supersedes it
// entirely.
type ReviewSession struct {
	SessionID  string             `json:"sessionId"`
	TrainerID  string             `json:"trainerId"`
	Proposed   []ProposedEntry    `json:"proposed"`
	Selected   []int              `json:"selected"` // requestIds marked for commit
	Statistics ScheduleStatistics `json:"statistics"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// IsSelected reports whether the given requestId is marked for commit.
func (s *ReviewSession) IsSelected(requestID int) bool {
	for _, id := range s.Selected {
		if id == requestID {
			return true
		}
	}
	return false
}

// HasProposal reports whether the given requestId is present in the
// current proposal list.
func (s *ReviewSession) HasProposal(requestID int) bool {
	for _, e := range s.Proposed {
		if e.RequestID == requestID {
			return true
		}
	}
	return false
}

// SelectedEntries returns the proposed entries marked for commit, in
// proposal-list order.
func (s *ReviewSession) SelectedEntries() []ProposedEntry {
	var out []ProposedEntry
	for _, e := range s.Proposed {
		if s.IsSelected(e.RequestID) {
			out = append(out, e)
		}
	}
	return out
}
