package recordsRepo

import (
	"context"

	"fitsched/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListBookings fetches all bookings for a trainer, optionally filtered by status.
func (r *mongoRecordRepo) ListBookings(ctx context.Context, trainerID string, status string) ([]models.Booking, error) {
	filter := bson.M{"trainer_id": trainerID}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListSessions fetches all sessions for a trainer, optionally filtered by status.
func (r *mongoRecordRepo) ListSessions(ctx context.Context, trainerID string, status string) ([]models.Session, error) {
	filter := bson.M{"trainer_id": trainerID}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.sessions.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
