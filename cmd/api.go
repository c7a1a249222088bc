package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CameronXie/storefront-auth/internal/config"
	"github.com/CameronXie/storefront-auth/internal/version"
)

type options struct {
	configPath      string
	logLevel        string
	port            int
	directoryFile   string
	directoryDriver string
	directoryDSN    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the storefront-auth command tree.
func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(new(options))
}

func newRootCmdWithOptions(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "storefront-auth",
		Short:         "Credential sign-in endpoint for the storefront",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: "+config.EnvLogLevel+")")
	flags.StringVar(&opts.directoryFile, "directory-file", "", "JSON or YAML user fixture (env: "+config.EnvDirectoryFile+")")
	flags.StringVar(&opts.directoryDriver, "directory-driver", "", "SQL driver: sqlite3 or mysql (env: "+config.EnvDirectoryDriver+")")
	flags.StringVar(&opts.directoryDSN, "directory-dsn", "", "SQL data source name (env: "+config.EnvDirectoryDSN+")")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))

	return rootCmd
}

// resolveConfig loads the config file and applies any flags set on cmd.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("port") {
		cfg.Server.Port = opts.port
	}
	if flags.Changed("directory-file") {
		cfg.Directory.File = opts.directoryFile
	}
	if flags.Changed("directory-driver") {
		cfg.Directory.Driver = opts.directoryDriver
	}
	if flags.Changed("directory-dsn") {
		cfg.Directory.DSN = opts.directoryDSN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, _ := cfg.Level()

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).With(
		slog.String("version", version.Version),
	)
}
