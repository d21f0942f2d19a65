package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

// UserService owns the user directory: account creation, lookup and the
// change-password flow.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// CreateUserInput carries the candidate account fields. Password is the
// plaintext supplied by the caller; it is hashed before persistence.
type CreateUserInput struct {
	Email       string
	Password    string
	Role        string
	DisplayName string
}

// CreateUser persists a new account. The email must not collide with an
// existing user (store-native, case-sensitive comparison). Status is forced
// to active regardless of input.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewValidationError("email already exists", map[string]any{"email": input.Email})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       domain.UserStatusActive,
		DisplayName:  input.DisplayName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns the matching user, or nil without error when no
// account exists. Callers must treat the nil result distinctly from a fetch
// failure.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers returns every account, no pagination.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ChangePassword replaces the stored hash after verifying the current
// password. An unknown email or a failed verification yields false with no
// error; the error return is reserved for store failures.
func (s *UserService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return false, nil
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return false, err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
