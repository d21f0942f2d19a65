package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/config"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

// AuthService validates login credentials against stored accounts and issues
// identity results with a session token.
type AuthService struct {
	users     repository.UserRepository
	directory *UserService
	tokenMgr  *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, directory *UserService) *AuthService {
	return &AuthService{
		users:     users,
		directory: directory,
		tokenMgr:  auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// Login authenticates by email and password. An unknown email, a failed
// password verification and an inactive account are all reported as the same
// credential failure. A directory miss after successful authentication is a
// store inconsistency and surfaces as a distinct internal fault.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, string, time.Time, error) {
	account, err := s.users.GetByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}
	if account.Status != domain.UserStatusActive {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}

	profile, err := s.directory.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if profile == nil {
		return nil, "", time.Time{}, apperrors.NewProfileInconsistency(email)
	}

	token, exp, err := s.tokenMgr.GenerateToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	identity := domain.IdentityOf(profile)
	return &identity, token, exp, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) (bool, error) {
	return s.directory.ChangePassword(ctx, email, currentPassword, newPassword)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
