package recordsRepo

import (
	"context"

	"fitsched/database"
	"fitsched/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CalendarRecordRepository is the read boundary over the booking/session
// store. The store is the system of record; callers operate on the
// snapshots these methods return.
type CalendarRecordRepository interface {
	ListBookings(ctx context.Context, trainerID string, status string) ([]models.Booking, error)
	ListSessions(ctx context.Context, trainerID string, status string) ([]models.Session, error)
}

type mongoRecordRepo struct {
	bookings *mongo.Collection
	sessions *mongo.Collection
}

// NewMongoRecordRepo returns a new CalendarRecordRepository instance using MongoDB.
func NewMongoRecordRepo() CalendarRecordRepository {
	db := database.MongoClient.Database("fitsched")
	return &mongoRecordRepo{
		bookings: db.Collection("bookings"),
		sessions: db.Collection("sessions"),
	}
}
