// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/learnhub/internal/app/resources"
	userstore "github.com/dalemusser/learnhub/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// the shared template sets and, when configured, promotes the superadmin
// account.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if appCfg.SuperAdminEmail != "" {
		if err := ensureSuperAdmin(ctx, deps, appCfg.SuperAdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureSuperAdmin grants the site admin role to the configured account.
// A missing account is logged, not fatal: the operator may not have
// created it yet, and startup should not wedge on that.
func ensureSuperAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	err := userstore.New(deps.LearnHubMongoDatabase).PromoteToAdmin(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.Warn("superadmin email not found; skipping promotion",
			zap.String("email", email))
		return nil
	}
	if err != nil {
		logger.Error("superadmin promotion failed", zap.String("email", email), zap.Error(err))
		return err
	}
	logger.Info("superadmin ensured", zap.String("email", email))
	return nil
}
