package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"heatzyctl/config"
	"heatzyctl/internal/application"
	"heatzyctl/internal/domain"
	"heatzyctl/internal/infra/heatzy"
)

var (
	flagConfig   string
	flagToken    string
	flagLogLevel string

	cfg       *config.Config
	logger    *slog.Logger
	client    *heatzy.Client
	directory *application.Directory
)

var rootCmd = &cobra.Command{
	Use:           "heatzyctl",
	Short:         "Control Heatzy heaters from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}

		level := cfg.Log.Level
		if flagLogLevel != "" {
			level = flagLogLevel
		}
		logger = setupLogger(level, cfg.Log.Format)

		baseURL := cfg.API.BaseURL
		if baseURL == "" {
			baseURL = heatzy.DefaultBaseURL
		}
		client = heatzy.NewClientWithURL(cfg.API.AppID, baseURL, cfg.Timeout(), logger)
		if flagToken != "" {
			client.SetToken(flagToken)
		}
		directory = application.NewDirectory(client, logger)

		return nil
	},
}

// usageError marks errors that should exit with the usage code.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", defaultConfigPath(), "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "authentication token (obtain one with the login subcommand)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (error, warn, info, debug)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "heatzyctl", "config.yaml")
}

func setupLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: lvl}

	// Logs go to stderr; stdout is reserved for command output so it
	// stays capturable from shell scripts.
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// requireToken guards subcommands that talk to authenticated endpoints.
func requireToken() error {
	if client.Token() == "" {
		return fmt.Errorf("%w: pass --token or run the login subcommand first", domain.ErrNoToken)
	}
	return nil
}

func exitCode(err error) int {
	var usage usageError
	switch {
	case errors.As(err, &usage):
		return 2
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrNoToken),
		errors.Is(err, domain.ErrMalformedResponse):
		return 3
	case errors.Is(err, domain.ErrNotFound):
		return 4
	case errors.Is(err, domain.ErrAmbiguousAlias):
		return 5
	case errors.Is(err, domain.ErrUnknownMode),
		errors.Is(err, domain.ErrUnrecognizedWireCode):
		return 6
	default:
		return 1
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "heatzyctl: %v\n", err)
		os.Exit(exitCode(err))
	}
}
