package migrate

import (
	"context"
	"fmt"

	"github.com/greenloop/greenloop-go/pkg/config"
	"github.com/greenloop/greenloop-go/pkg/db"
	"github.com/greenloop/greenloop-go/pkg/logger"
)

// MaybeAutoRun brings the local store schema up to date when auto-migrate is
// enabled. goose's own output is silenced by the caller's choice of command.
func MaybeAutoRun(ctx context.Context, cfg config.LocalStoreConfig, logg *logger.Logger, client *db.Client) error {
	if !cfg.AutoMigrate {
		return nil
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"dialect": client.Dialect()})
	logg.Debug(ctx, "local store migrations starting")

	if err := Up(ctx, sqlDB, client.Dialect()); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Debug(ctx, "local store migrations completed")
	return nil
}
