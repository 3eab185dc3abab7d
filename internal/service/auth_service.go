package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"evcharge/internal/apperrors"
	"evcharge/internal/models"
	"evcharge/internal/sessions"
)

// ErrInvalidCredentials represents login failure. Deliberately not part of
// the apperrors taxonomy: credential failures map to 401, never 400/409.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// UserReader is the storage contract the auth service needs.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionStore records and revokes issued-token sessions.
type SessionStore interface {
	Save(ctx context.Context, session sessions.Session, ttl time.Duration) error
	Revoke(ctx context.Context, tokenID string) error
}

// AuthService validates credentials and issues tokens.
type AuthService struct {
	users     UserReader
	hasher    PasswordComparer
	tokenizer *TokenService
	store     SessionStore
	logger    *zap.Logger
}

// PasswordComparer is the subset of password.Hasher the auth service uses.
type PasswordComparer interface {
	Compare(hash, password string) error
}

// NewAuthService builds AuthService.
func NewAuthService(users UserReader, hasher PasswordComparer, tokenizer *TokenService, store SessionStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokenizer: tokenizer,
		store:     store,
		logger:    logger,
	}
}

// Login authenticates a user, issues a JWT and records the session.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenID, err := s.tokenizer.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	if s.store != nil {
		saveErr := s.store.Save(ctx, sessions.Session{
			TokenID: tokenID,
			UserID:  user.ID,
			Email:   user.Email,
			Role:    string(user.Role),
		}, s.tokenizer.ExpiresIn())
		if saveErr != nil {
			return "", nil, saveErr
		}
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return token, user, nil
}

// Logout revokes the session behind the given token id.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Revoke(ctx, tokenID); err != nil {
		return err
	}
	s.logger.Info("session revoked", zap.String("token_id", tokenID))
	return nil
}
