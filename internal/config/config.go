// Package config loads huebuild configuration from file, environment
// and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved huebuild configuration.
type Config struct {
	// ThemesDir is where user theme definitions live.
	ThemesDir string `mapstructure:"themes_dir"`

	// Output is the assembled stylesheet path.
	Output string `mapstructure:"output"`

	// StatePath is the SQLite database holding the active selection and
	// the audit log.
	StatePath string `mapstructure:"state_path"`

	// Strict makes any theme validation error fail the build.
	Strict bool `mapstructure:"strict"`

	// LogLevel is one of zerolog's level names.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ThemesDir: "themes",
		Output:    filepath.Join("public", "styles", "themes.css"),
		StatePath: defaultStatePath(),
		LogLevel:  "info",
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".huebuild", "state.db")
	}
	return filepath.Join(home, ".config", "huebuild", "state.db")
}

// Load reads configuration from the given file, or from huebuild.yaml in
// the working directory when path is empty. Environment variables
// prefixed HUEBUILD_ override file values. A missing file is not an
// error; the defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("themes_dir", defaults.ThemesDir)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("state_path", defaults.StatePath)
	v.SetDefault("strict", false)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("HUEBUILD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("huebuild")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Only an explicitly named file is required to exist.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
