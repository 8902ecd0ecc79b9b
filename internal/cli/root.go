package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jeepies/leagues/internal/config"
	"github.com/jeepies/leagues/internal/store"
)

// RootOptions holds global settings for all commands.
// Config is filled in before any subcommand runs.
type RootOptions struct {
	Config *config.Config

	// StoreOptions are passed to store.Open. Tests use them to pin
	// toggle event IDs.
	StoreOptions []store.Option
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the leagues CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "Track league tasks",
		Long: `A checklist for league tasks with a small filter language.

Tasks come from a JSON, YAML or CUE dataset. Completion state is kept in a
local SQLite database keyed by a content hash of each task.

Examples:
  leagues query 'pts > 20 and !completed'
  leagues query --last
  leagues toggle 856d0a67
  leagues explain 'where area = "Al Kharid" and done'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			if !isValidFormat(cfg.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", cfg.Format, ValidFormats))
			}
			if _, err := parseLocale(cfg.Locale); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid locale %q", cfg.Locale), err)
			}
			opts.Config = cfg

			setupLogging(cmd.ErrOrStderr(), cfg.Verbose)
			slog.Debug("config resolved",
				"file", cfg.File,
				"db", cfg.DB,
				"dataset", cfg.Dataset,
				"locale", cfg.Locale)
			return nil
		},
	}

	// Global flags
	config.RegisterFlags(cmd.PersistentFlags())

	// Add subcommands
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewToggleCommand(opts))
	cmd.AddCommand(NewExplainCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// setupLogging installs the default slog logger for the command run.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func parseLocale(locale string) (language.Tag, error) {
	return language.Parse(locale)
}
