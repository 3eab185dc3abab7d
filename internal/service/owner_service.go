package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
)

// OwnerRepository is the storage contract for EV owners.
type OwnerRepository interface {
	GetByNIC(ctx context.Context, nic string) (*models.EVOwner, error)
	Insert(ctx context.Context, owner *models.EVOwner) error
	Replace(ctx context.Context, owner *models.EVOwner) error
	Delete(ctx context.Context, nic string) error
	ListAll(ctx context.Context) ([]models.EVOwner, error)
}

// OwnerService implements EV-owner CRUD keyed by NIC.
type OwnerService struct {
	owners OwnerRepository
	logger *zap.Logger
}

// NewOwnerService builds OwnerService.
func NewOwnerService(owners OwnerRepository, logger *zap.Logger) *OwnerService {
	return &OwnerService{owners: owners, logger: logger}
}

// OwnerInput carries the mutable owner fields.
type OwnerInput struct {
	Name           string
	Email          string
	Phone          string
	VehicleDetails string
}

// Create stores a new owner. The NIC is an exact, case-sensitive key; a
// duplicate surfaces as a conflict from the store's key constraint.
func (s *OwnerService) Create(ctx context.Context, nic string, input OwnerInput) (*models.EVOwner, error) {
	if strings.TrimSpace(nic) == "" {
		return nil, fmt.Errorf("NIC is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	}

	owner := &models.EVOwner{
		NIC:            nic,
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		VehicleDetails: strings.TrimSpace(input.VehicleDetails),
		Status:         models.StatusActive,
	}
	if err := s.owners.Insert(ctx, owner); err != nil {
		return nil, err
	}

	s.logger.Info("owner created", zap.String("nic", owner.NIC))
	return owner, nil
}

// Update replaces all mutable fields of the owner identified by NIC.
func (s *OwnerService) Update(ctx context.Context, nic string, input OwnerInput) error {
	existing, err := s.owners.GetByNIC(ctx, nic)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("name is required: %w", apperrors.ErrValidation)
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Email = strings.TrimSpace(input.Email)
	existing.Phone = strings.TrimSpace(input.Phone)
	existing.VehicleDetails = strings.TrimSpace(input.VehicleDetails)
	return s.owners.Replace(ctx, existing)
}

// Delete removes an owner by NIC.
func (s *OwnerService) Delete(ctx context.Context, nic string) error {
	return s.owners.Delete(ctx, nic)
}

// Activate marks the owner account active.
func (s *OwnerService) Activate(ctx context.Context, nic string) error {
	return s.setStatus(ctx, nic, models.StatusActive)
}

// Deactivate marks the owner account inactive.
func (s *OwnerService) Deactivate(ctx context.Context, nic string) error {
	return s.setStatus(ctx, nic, models.StatusInactive)
}

func (s *OwnerService) setStatus(ctx context.Context, nic string, status models.AccountStatus) error {
	owner, err := s.owners.GetByNIC(ctx, nic)
	if err != nil {
		return err
	}

	owner.Status = status
	if err := s.owners.Replace(ctx, owner); err != nil {
		return err
	}

	s.logger.Info("owner status changed", zap.String("nic", nic), zap.String("status", string(status)))
	return nil
}

// GetByNIC returns an owner by NIC.
func (s *OwnerService) GetByNIC(ctx context.Context, nic string) (*models.EVOwner, error) {
	return s.owners.GetByNIC(ctx, nic)
}

// GetAll returns every owner.
func (s *OwnerService) GetAll(ctx context.Context) ([]models.EVOwner, error) {
	return s.owners.ListAll(ctx)
}
