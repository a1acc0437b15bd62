// Package config provides configuration loaded from the environment.
package config

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/sethvargo/go-envconfig"
	"github.com/sirupsen/logrus"
)

const (
	// AppName is the application name.
	AppName = "codeconv"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "CODECONV_"

	// DefaultLogLevel keeps load diagnostics quiet unless asked for.
	DefaultLogLevel = "warn"
)

// Config holds runtime configuration.
type Config struct {
	// CountryFile and LanguageFile override the embedded tables when set.
	CountryFile  string `env:"COUNTRY_FILE"`
	LanguageFile string `env:"LANGUAGE_FILE"`
	LogLevel     string `env:"LOG_LEVEL,default=warn"`
	JSONOutput   bool   `env:"JSON,default=false"`
}

// Load reads CODECONV_* variables from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l, applying EnvPrefix.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, l),
	})
	if err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	if cfg.CountryFile, err = homedir.Expand(cfg.CountryFile); err != nil {
		return nil, fmt.Errorf("expand country file: %w", err)
	}
	if cfg.LanguageFile, err = homedir.Expand(cfg.LanguageFile); err != nil {
		return nil, fmt.Errorf("expand language file: %w", err)
	}
	return cfg, nil
}

// Logger builds the diagnostic logger for the configured level.
func (c *Config) Logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l, nil
}
