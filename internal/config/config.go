// Package config resolves leagues settings from flags, environment
// variables and an optional YAML config file.
//
// Precedence, highest first: command-line flag, LEAGUES_* environment
// variable, config file, built-in default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

const (
	// AppName is the application directory name.
	AppName = "leagues"

	// EnvPrefix prefixes every environment variable bound to a flag.
	EnvPrefix = "LEAGUES"

	// DatabaseFile is the default SQLite filename inside the config dir.
	DatabaseFile = "leagues.db"

	configName = "config"
)

// Flag names shared by the CLI and Load.
const (
	FlagConfig  = "config"
	FlagDB      = "db"
	FlagDataset = "dataset"
	FlagLocale  = "locale"
	FlagFormat  = "format"
	FlagVerbose = "verbose"
)

// Defaults.
const (
	DefaultDataset = "tasks.json"
	DefaultLocale  = "en"
	DefaultFormat  = "text"
)

// Config holds resolved settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File is the config file that was read, or "" when none was found.
	File string

	// DB is the SQLite completion store path.
	DB string

	// Dataset is the task dataset path (.json, .yaml, .yml or .cue).
	Dataset string

	// Locale orders group headings, e.g. "en" or "sv".
	Locale string

	// Format is the output format: text or json.
	Format string

	// Verbose enables debug logging.
	Verbose bool
}

// RegisterFlags adds the persistent leagues flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Config file (default $XDG_CONFIG_HOME/leagues/config.yaml)")
	fs.String(FlagDB, "", "Completion database path (default <config dir>/leagues.db)")
	fs.String(FlagDataset, DefaultDataset, "Task dataset (.json, .yaml, .yml or .cue)")
	fs.String(FlagLocale, DefaultLocale, "Locale for ordering group headings")
	fs.String(FlagFormat, DefaultFormat, "Output format: text or json")
	fs.BoolP(FlagVerbose, "v", false, "Enable verbose output")
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Load resolves settings for the flags in fs, which must have been
// registered with RegisterFlags and parsed.
//
// Flags the user did not set are filled from the environment or the config
// file. An explicit --config file must exist; the default one may be
// missing.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	dir := DefaultConfigDir()

	explicit, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if there isn't a default config file
		if explicit != "" || !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := BindFlags(fs, v, EnvPrefix); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	cfg := &Config{Dir: dir, File: v.ConfigFileUsed()}
	err = multierr.Combine(
		stringFlag(fs, FlagDB, &cfg.DB),
		stringFlag(fs, FlagDataset, &cfg.Dataset),
		stringFlag(fs, FlagLocale, &cfg.Locale),
		stringFlag(fs, FlagFormat, &cfg.Format),
	)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose, err = fs.GetBool(FlagVerbose); err != nil {
		return nil, err
	}

	if cfg.DB == "" {
		cfg.DB = filepath.Join(dir, DatabaseFile)
	}
	return cfg, nil
}

// BindFlags binds each flag to its config file key and environment
// variable. A flag the user did not set takes the viper value when one
// exists.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper, envPrefix string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			err = multierr.Append(err, v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)))
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			err = multierr.Append(err, fs.Set(f.Name, fmt.Sprintf("%v", val)))
		}
	})
	return err
}

func stringFlag(fs *pflag.FlagSet, name string, dst *string) error {
	val, err := fs.GetString(name)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

// EnsureDir creates the directory that holds path if it doesn't exist.
// Directory is created with mode 0700.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o700)
}
