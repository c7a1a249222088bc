package main

import (
	"context"
	"log/slog"

	"github.com/CameronXie/storefront-auth/internal/config"
	"github.com/CameronXie/storefront-auth/internal/directory"
	"github.com/CameronXie/storefront-auth/internal/directory/filestore"
	"github.com/CameronXie/storefront-auth/internal/directory/sqlstore"
)

// loadDirectory builds the user directory from the configured source. The
// database connection, if any, is closed once the users are loaded.
func loadDirectory(ctx context.Context, cfg config.DirectoryConfig, logger *slog.Logger) (*directory.Directory, error) {
	if !cfg.UsesSQL() {
		logger.Info("loading directory from file", "path", cfg.File)
		return directory.Load(ctx, filestore.New(cfg.File))
	}

	logger.Info("loading directory from database", "driver", cfg.Driver)
	db, err := sqlstore.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return directory.Load(ctx, sqlstore.New(db))
}
