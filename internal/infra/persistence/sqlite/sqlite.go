// Package sqlite contains the durable persistence layer using GORM over a
// device-local sqlite file. Only the profile lives here; everything else is
// volatile by design.
package sqlite

import (
	"context"
	"log/slog"

	"antigaspi/config"
	"antigaspi/internal/domain/lifecycle"
	"antigaspi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the device-local sqlite database and migrates the profile schema.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.SQLite.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	if err := db.AutoMigrate(&model.ProfileModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate profile schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping sqlite")
			}
			params.Logger.Info("sqlite store ready", slog.String("path", params.Config.SQLite.Path))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
