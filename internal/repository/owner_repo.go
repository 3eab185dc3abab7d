package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
)

// OwnerRepository persists EV owners keyed by NIC. The NIC doubles as the
// document _id, so key uniqueness is enforced by the store itself rather than
// an application-level pre-check.
type OwnerRepository struct {
	collection *mongo.Collection
}

// NewOwnerRepository returns an owner repository.
func NewOwnerRepository(db *mongo.Database) *OwnerRepository {
	return &OwnerRepository{collection: db.Collection("evowners")}
}

// GetByNIC fetches an owner by national identity code.
func (r *OwnerRepository) GetByNIC(ctx context.Context, nic string) (*models.EVOwner, error) {
	var owner models.EVOwner
	if err := r.collection.FindOne(ctx, bson.M{"_id": nic}).Decode(&owner); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("owner %s: %w", nic, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &owner, nil
}

// Insert stores a new owner. A duplicate NIC surfaces as a conflict.
func (r *OwnerRepository) Insert(ctx context.Context, owner *models.EVOwner) error {
	owner.Version = 1
	if _, err := r.collection.InsertOne(ctx, owner); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("NIC %s already exists: %w", owner.NIC, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// Replace overwrites an owner conditionally on the version the caller read.
func (r *OwnerRepository) Replace(ctx context.Context, owner *models.EVOwner) error {
	next := *owner
	next.Version = owner.Version + 1

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": owner.NIC, "version": owner.Version}, &next)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("owner %s modified concurrently: %w", owner.NIC, apperrors.ErrConflict)
	}
	owner.Version = next.Version
	return nil
}

// Delete removes an owner by NIC.
func (r *OwnerRepository) Delete(ctx context.Context, nic string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": nic})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("owner %s: %w", nic, apperrors.ErrNotFound)
	}
	return nil
}

// ListAll returns every owner.
func (r *OwnerRepository) ListAll(ctx context.Context) ([]models.EVOwner, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	owners := make([]models.EVOwner, 0)
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// Count returns the total number of owners.
func (r *OwnerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
