package assignment

import (
	"context"
	"fmt"

	"fitsched/models"
)

// GetOptimalSchedule fetches the proposed schedule for a trainer.
func (c *HTTPClient) GetOptimalSchedule(ctx context.Context, trainerID string) (*models.OptimalSchedule, error) {
	var schedule models.OptimalSchedule
	path := fmt.Sprintf("/api/schedule/optimal/%s", trainerID)
	if err := c.getJSON(ctx, path, &schedule); err != nil {
		return nil, fmt.Errorf("fetching optimal schedule: %w", err)
	}
	return &schedule, nil
}

// ApplyProposedEntry applies one proposed entry by request id.
func (c *HTTPClient) ApplyProposedEntry(ctx context.Context, requestID int) (*models.ApplyResult, error) {
	payload := map[string]int{"request_id": requestID}
	var result models.ApplyResult
	if err := c.postJSON(ctx, "/api/schedule/apply", payload, &result); err != nil {
		return nil, fmt.Errorf("applying proposed entry %d: %w", requestID, err)
	}
	return &result, nil
}

// CheckAvailabilityBatch pre-validates proposed entries on the service side.
func (c *HTTPClient) CheckAvailabilityBatch(ctx context.Context, entries []models.ProposedEntry) ([]models.BatchConflict, error) {
	payload := map[string]interface{}{"entries": entries}
	var response struct {
		Conflicts []models.BatchConflict `json:"conflicts"`
	}
	if err := c.postJSON(ctx, "/api/schedule/availability/check", payload, &response); err != nil {
		return nil, fmt.Errorf("checking availability batch: %w", err)
	}
	return response.Conflicts, nil
}
