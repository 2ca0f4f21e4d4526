package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hueforge/huebuild/internal/cssgen"
	"github.com/hueforge/huebuild/internal/db"
	"github.com/hueforge/huebuild/internal/events"
	"github.com/hueforge/huebuild/internal/themes"
	"github.com/hueforge/huebuild/internal/validate"
)

var (
	buildOutput string
	buildStrict bool
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "stylesheet path (default from config)")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "fail the build on any theme validation error")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile themes into the site stylesheet",
	Long: "Load every theme definition, validate it, and assemble the combined\n" +
		"stylesheet consumed by all pages.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		set, err := themes.LoadSet(cfg.ThemesDir)
		if err != nil {
			return err
		}

		themeRecords := set.Themes()
		results := validate.ValidateThemes(themeRecords)

		failed := 0
		for id, result := range results {
			for _, w := range result.Warnings {
				logger.Warn().Str("theme", id).Msg(w)
			}
			if !result.Valid {
				failed++
				for _, e := range result.Errors {
					logger.Error().Str("theme", id).Msg(e)
				}
			}
		}

		if failed > 0 && (buildStrict || cfg.Strict) {
			return fmt.Errorf("%d theme(s) failed validation", failed)
		}

		sheet := cssgen.Stylesheet(themeRecords)

		output := buildOutput
		if output == "" {
			output = cfg.Output
		}
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(output, []byte(sheet), 0644); err != nil {
			return fmt.Errorf("write stylesheet: %w", err)
		}

		logBuildEvent(cmd, len(themeRecords), output, len(sheet))

		logger.Info().
			Int("themes", len(themeRecords)).
			Int("invalid", failed).
			Str("output", output).
			Msg("stylesheet assembled")

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, BuildSummary{
				Themes:  len(themeRecords),
				Invalid: failed,
				Output:  output,
				Bytes:   len(sheet),
			})
		}

		fmt.Printf("Wrote %d theme(s) to %s (%d bytes)\n", len(themeRecords), output, len(sheet))
		return nil
	},
}

// BuildSummary is the payload printed by `huebuild build --json`.
type BuildSummary struct {
	Themes  int    `json:"themes"`
	Invalid int    `json:"invalid"`
	Output  string `json:"output"`
	Bytes   int    `json:"bytes"`
}

// logBuildEvent appends a build record to the audit log. The build result
// does not depend on it; a broken state database only costs the audit row.
func logBuildEvent(cmd *cobra.Command, themeCount int, output string, size int) {
	database, err := openDatabase(cmd)
	if err != nil {
		logger.Debug().Err(err).Msg("state database unavailable; skipping build event")
		return
	}
	defer database.Close()

	repo := db.NewEventRepository(database)
	if err := events.LogStylesheetBuilt(cmd.Context(), repo, themeCount, output, size); err != nil {
		logger.Debug().Err(err).Msg("failed to record build event")
	}
}
