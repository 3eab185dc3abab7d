package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
)

// StationRepository persists charging stations.
type StationRepository struct {
	collection *mongo.Collection
}

// NewStationRepository returns a station repository.
func NewStationRepository(db *mongo.Database) *StationRepository {
	return &StationRepository{collection: db.Collection("chargingstations")}
}

// GetByID fetches a station by id.
func (r *StationRepository) GetByID(ctx context.Context, id string) (*models.ChargingStation, error) {
	var station models.ChargingStation
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&station); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("station %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &station, nil
}

// Insert stores a new station, assigning a generated id when absent.
func (r *StationRepository) Insert(ctx context.Context, station *models.ChargingStation) error {
	if station.ID == "" {
		station.ID = primitive.NewObjectID().Hex()
	}
	station.Version = 1
	if _, err := r.collection.InsertOne(ctx, station); err != nil {
		return err
	}
	return nil
}

// Replace overwrites a station conditionally on the version the caller read.
func (r *StationRepository) Replace(ctx context.Context, station *models.ChargingStation) error {
	next := *station
	next.Version = station.Version + 1

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": station.ID, "version": station.Version}, &next)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("station %s modified concurrently: %w", station.ID, apperrors.ErrConflict)
	}
	station.Version = next.Version
	return nil
}

// Delete removes a station by id.
func (r *StationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("station %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// ListAll returns every station.
func (r *StationRepository) ListAll(ctx context.Context) ([]models.ChargingStation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stations := make([]models.ChargingStation, 0)
	if err := cursor.All(ctx, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// Count returns the total number of stations.
func (r *StationRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
