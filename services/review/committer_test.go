package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitsched/models"
)

func TestCommit_PartialFailureContinues(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	schedule := &models.OptimalSchedule{
		ProposedEntries: []models.ProposedEntry{
			proposedEntry(101, base, 60),
			proposedEntry(102, base.Add(2*time.Hour), 60),
			proposedEntry(103, base.Add(4*time.Hour), 60),
		},
	}
	svc, client, _ := testService(schedule)
	client.applyResults[102] = &models.ApplyResult{
		Status: models.ApplyStatusRejected,
		Reason: "slot no longer available",
	}
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "trainer-1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if _, err := svc.SelectAll(ctx, session.SessionID); err != nil {
		t.Fatalf("SelectAll() error = %v", err)
	}

	summary, err := svc.Commit(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	if summary.AppliedCount != 2 || summary.FailedCount != 1 {
		t.Errorf("Commit() applied=%d failed=%d, want 2/1", summary.AppliedCount, summary.FailedCount)
	}
	if len(client.applied) != 3 {
		t.Errorf("service saw %d applies, want 3 (failure must not abort the rest)", len(client.applied))
	}
	if len(summary.FailedDetails) != 1 || summary.FailedDetails[0].RequestID != 102 {
		t.Errorf("FailedDetails = %+v, want entry 102", summary.FailedDetails)
	}
	if summary.FailedDetails[0].Reason != "slot no longer available" {
		t.Errorf("failure reason = %q, want service rejection reason", summary.FailedDetails[0].Reason)
	}
}

func TestCommit_TransportFailureCountsAsRejection(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	schedule := &models.OptimalSchedule{
		ProposedEntries: []models.ProposedEntry{
			proposedEntry(101, base, 60),
			proposedEntry(102, base.Add(2*time.Hour), 60),
		},
	}
	svc, client, _ := testService(schedule)
	client.applyErrs[101] = errors.New("connection reset")
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "trainer-1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if _, err := svc.SelectAll(ctx, session.SessionID); err != nil {
		t.Fatalf("SelectAll() error = %v", err)
	}

	summary, err := svc.Commit(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	if summary.AppliedCount != 1 || summary.FailedCount != 1 {
		t.Errorf("Commit() applied=%d failed=%d, want 1/1", summary.AppliedCount, summary.FailedCount)
	}
	if len(client.applied) != 2 {
		t.Errorf("service saw %d applies, want 2 (no retry, no abort)", len(client.applied))
	}
}

func TestCommit_AppliesInProposalOrder(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	schedule := &models.OptimalSchedule{
		ProposedEntries: []models.ProposedEntry{
			proposedEntry(103, base, 60),
			proposedEntry(101, base.Add(2*time.Hour), 60),
			proposedEntry(102, base.Add(4*time.Hour), 60),
		},
	}
	svc, client, _ := testService(schedule)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "trainer-1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	// Select in a different order than the proposal list.
	for _, id := range []int{102, 103, 101} {
		if _, err := svc.Toggle(ctx, session.SessionID, id); err != nil {
			t.Fatalf("Toggle(%d) error = %v", id, err)
		}
	}

	if _, err := svc.Commit(ctx, session.SessionID); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	want := []int{103, 101, 102}
	if len(client.applied) != len(want) {
		t.Fatalf("service saw %d applies, want %d", len(client.applied), len(want))
	}
	for i, id := range want {
		if client.applied[i] != id {
			t.Errorf("apply %d was request %d, want %d (proposal-list order)", i, client.applied[i], id)
		}
	}
}

func TestCommit_DiscardsSession(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	schedule := &models.OptimalSchedule{
		ProposedEntries: []models.ProposedEntry{proposedEntry(101, base, 60)},
	}
	svc, _, store := testService(schedule)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "trainer-1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if _, err := svc.SelectAll(ctx, session.SessionID); err != nil {
		t.Fatalf("SelectAll() error = %v", err)
	}

	if _, err := svc.Commit(ctx, session.SessionID); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	if len(store.deleted) != 1 || store.deleted[0] != session.SessionID {
		t.Errorf("session not discarded after commit: deleted=%v", store.deleted)
	}
	if _, err := svc.GetSession(ctx, session.SessionID); err == nil {
		t.Error("GetSession() succeeded after commit, want not-found error")
	}
}

func TestCommit_EmptySelection(t *testing.T) {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	schedule := &models.OptimalSchedule{
		ProposedEntries: []models.ProposedEntry{proposedEntry(101, base, 60)},
	}
	svc, client, _ := testService(schedule)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "trainer-1")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	summary, err := svc.Commit(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	if summary.AppliedCount != 0 || summary.FailedCount != 0 {
		t.Errorf("empty commit produced applied=%d failed=%d", summary.AppliedCount, summary.FailedCount)
	}
	if len(client.applied) != 0 {
		t.Errorf("empty commit issued %d applies, want 0", len(client.applied))
	}
}
