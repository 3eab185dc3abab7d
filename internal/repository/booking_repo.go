package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
)

// BookingRepository persists bookings in the bookings collection.
type BookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository returns a booking repository and ensures its indexes.
// These indexes speed up lookups only; a failure to build them is logged but
// does not block startup.
func NewBookingRepository(db *mongo.Database, logger *zap.Logger) *BookingRepository {
	collection := db.Collection("bookings")

	ctx := context.Background()
	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "stationId", Value: 1}, {Key: "status", Value: 1}},
	}); err != nil {
		logger.Warn("failed to create booking station/status index", zap.Error(err))
	}
	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerNIC", Value: 1}},
	}); err != nil {
		logger.Warn("failed to create booking owner index", zap.Error(err))
	}

	return &BookingRepository{collection: collection}
}

// GetByID fetches a booking by id.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &booking, nil
}

// Insert stores a new booking, assigning a generated id when absent.
func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}
	booking.Version = 1
	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return err
	}
	return nil
}

// Replace overwrites a booking conditionally on the version the caller read.
// A stale version surfaces as a conflict.
func (r *BookingRepository) Replace(ctx context.Context, booking *models.Booking) error {
	next := *booking
	next.Version = booking.Version + 1

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": booking.ID, "version": booking.Version}, &next)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s modified concurrently: %w", booking.ID, apperrors.ErrConflict)
	}
	booking.Version = next.Version
	return nil
}

// ListByOwner returns all bookings for an owner NIC.
func (r *BookingRepository) ListByOwner(ctx context.Context, nic string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"ownerNIC": nic})
}

// ListByStation returns all bookings for a station.
func (r *BookingRepository) ListByStation(ctx context.Context, stationID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"stationId": stationID})
}

// ListAll returns every booking.
func (r *BookingRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountActiveByStation counts bookings still consuming capacity on a station.
func (r *BookingRepository) CountActiveByStation(ctx context.Context, stationID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"stationId": stationID,
		"status":    models.BookingStatusActive,
	})
}

// Count returns the total number of bookings.
func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
