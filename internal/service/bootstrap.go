package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/config"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// EnsureDefaultAdmin seeds a single administrator account when the user store
// is empty. Failure is logged and never prevents startup.
func EnsureDefaultAdmin(ctx context.Context, users repository.UserRepository, directory *UserService, cfg config.BootstrapConfig, logger *zap.Logger) {
	if !cfg.SeedAdmin {
		return
	}

	count, err := users.Count(ctx)
	if err != nil {
		logger.Error("failed to count users for admin bootstrap", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	admin, err := directory.CreateUser(ctx, CreateUserInput{
		Email:       cfg.AdminEmail,
		Password:    cfg.AdminPassword,
		Role:        cfg.AdminRole,
		DisplayName: cfg.AdminDisplayName,
	})
	if err != nil {
		logger.Error("failed to create default admin user", zap.Error(err))
		return
	}
	logger.Info("default admin user created", zap.String("email", admin.Email))
}
