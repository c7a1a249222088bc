package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/CameronXie/storefront-auth/internal/api/rest"
	"github.com/CameronXie/storefront-auth/internal/api/rest/handlers"
	"github.com/CameronXie/storefront-auth/internal/api/rest/middlewares"
	"github.com/CameronXie/storefront-auth/internal/authn"
	"github.com/CameronXie/storefront-auth/internal/config"
	"github.com/CameronXie/storefront-auth/internal/directory"
	"github.com/CameronXie/storefront-auth/internal/version"
)

const ShutdownTimeout = 15 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the user directory and serve the sign-in API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			logger := newLogger(os.Stdout, cfg)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := serve(ctx, cfg, logger); err != nil {
				logger.Error("server stopped with error", "error", err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.port, "port", 0, "HTTP port (env: "+config.EnvPort+")")

	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	dir, err := loadDirectory(ctx, cfg.Directory, logger)
	if err != nil {
		return err
	}

	if duplicates := dir.DuplicateEmails(); len(duplicates) > 0 {
		logger.Warn("directory contains duplicate emails, the first record with a matching password wins",
			"emails", duplicates)
	}

	server := newServer(cfg, dir, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", server.Addr, "users", dir.Len())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newServer(cfg *config.Config, dir *directory.Directory, logger *slog.Logger) *http.Server {
	mux := rest.NewMuxWithHandlers(
		&rest.RouterConfig{
			SignInHandler: handlers.NewSignInHandler(
				authn.NewAuthenticator(dir),
				cfg.Server.MaxBodyBytes,
				logger,
			),
			HealthHandler: handlers.NewHealthHandler(dir, version.Version),
			Middlewares: []middlewares.Middleware{
				middlewares.NewRequestIDMiddleware(logger),
			},
		},
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%v", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}
