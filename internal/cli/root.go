// Package cli implements the huebuild command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hueforge/huebuild/internal/config"
	"github.com/hueforge/huebuild/internal/db"
	"github.com/hueforge/huebuild/internal/logging"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool

	appConfig *config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "huebuild",
	Short: "Theme toolchain for the site",
	Long: "huebuild validates theme definitions, compiles them into the site stylesheet,\n" +
		"and manages the active theme selection.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = logging.New(os.Stderr, level)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default huebuild.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig returns the resolved configuration for the current invocation.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}

// openDatabase opens the state database, creating its directory on first
// use, and applies pending migrations.
func openDatabase(cmd *cobra.Command) (*db.DB, error) {
	path := appConfig.StatePath
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	if _, err := database.MigrateUp(cmd.Context()); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate state database: %w", err)
	}

	return database, nil
}
