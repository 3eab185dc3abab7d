package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
	"evcharge/internal/password"
)

// UserRepository is the storage contract for staff users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Replace(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserService implements staff user management. There is no password-change
// path; the hash is written once at creation.
type UserService struct {
	users  UserRepository
	hasher password.Hasher
	logger *zap.Logger
}

// NewUserService builds UserService.
func NewUserService(users UserRepository, hasher password.Hasher, logger *zap.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, logger: logger}
}

// Create registers a new staff user with a hashed password.
func (s *UserService) Create(ctx context.Context, email, plainPassword, fullName string, role models.Role) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if plainPassword == "" {
		return nil, fmt.Errorf("password is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("full name is required: %w", apperrors.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("role must be Backoffice or StationOperator: %w", apperrors.ErrValidation)
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.String("user_id", user.ID), zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return user, nil
}

// Update replaces email, name, role and active flag. The password hash stays.
func (s *UserService) Update(ctx context.Context, id, email, fullName string, role models.Role, isActive bool) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if !role.Valid() {
		return fmt.Errorf("role must be Backoffice or StationOperator: %w", apperrors.ErrValidation)
	}

	user.Email = email
	user.FullName = strings.TrimSpace(fullName)
	user.Role = role
	user.IsActive = isActive
	return s.users.Replace(ctx, user)
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// GetByID returns a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetAll returns every user.
func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.ListAll(ctx)
}

// EnsureSeedAdmin creates the configured Backoffice admin when the users
// collection is empty. Later runs are no-ops.
func (s *UserService) EnsureSeedAdmin(ctx context.Context, email, plainPassword, fullName string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := s.Create(ctx, email, plainPassword, fullName, models.RoleBackoffice); err != nil {
		return err
	}
	s.logger.Info("seed admin created", zap.String("email", strings.ToLower(email)))
	return nil
}
