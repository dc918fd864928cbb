package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	APIURL          string
	Timeout         time.Duration
	Lang            string
	LogLevel        string
	LogFormat       string
	LogFile         string
	DBPath          string
	CredentialsPath string
	// ConfigFile is the file that was loaded, empty when none was found.
	ConfigFile string
}

// Defaults for flags and unset keys.
const (
	DefaultAPIURL    = "https://api.maturapolski.pl"
	DefaultTimeout   = 15 * time.Second
	DefaultLang      = "pl"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// RegisterFlags adds the persistent flags every command understands.
func RegisterFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "Config file (default ./matura.yaml or ~/.config/matura/matura.yaml)")
	f.String("api-url", DefaultAPIURL, "Learning service base URL")
	f.Duration("timeout", DefaultTimeout, "HTTP request timeout")
	f.StringP("lang", "l", DefaultLang, "UI language (pl, en)")
	f.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	f.String("log-format", DefaultLogFormat, "Log format (pretty, json)")
	f.String("log-file", "", "Log file used while the TUI runs (default $XDG_STATE_HOME/matura/matura.log)")
	f.String("db", "", "Path to the local SQLite journal (overrides MATURA_DB)")
	f.String("credentials", "", "Path to the credentials file")
}

// Load resolves configuration from flags, MATURA_* environment variables, an
// optional .env file and matura.yaml, in that order of precedence.
func Load(cmd *cobra.Command) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix("MATURA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-url", DefaultAPIURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("lang", DefaultLang)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("log-format", DefaultLogFormat)

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("matura")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/matura")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		APIURL:          strings.TrimRight(v.GetString("api-url"), "/"),
		Timeout:         v.GetDuration("timeout"),
		Lang:            strings.ToLower(v.GetString("lang")),
		LogLevel:        v.GetString("log-level"),
		LogFormat:       v.GetString("log-format"),
		LogFile:         v.GetString("log-file"),
		DBPath:          v.GetString("db"),
		CredentialsPath: v.GetString("credentials"),
		ConfigFile:      v.ConfigFileUsed(),
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Lang != "pl" && cfg.Lang != "en" {
		return nil, fmt.Errorf("unsupported language %q (pl, en)", cfg.Lang)
	}

	var err error
	if cfg.LogFile == "" {
		if cfg.LogFile, err = DefaultLogPath(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// DefaultLogPath is $XDG_STATE_HOME/matura/matura.log, falling back to
// ~/.local/state.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "matura", "matura.log"), nil
}
