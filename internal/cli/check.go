package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/huebuild/internal/themes"
	"github.com/hueforge/huebuild/internal/validate"
)

var checkStrict bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit non-zero when any theme fails validation")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every theme",
	Long:  "Validate all theme definitions and print a pass/fail report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		set, err := themes.LoadSet(cfg.ThemesDir)
		if err != nil {
			return err
		}

		results := validate.ValidateThemes(set.Themes())

		if IsJSONOutput() {
			if err := WriteOutput(os.Stdout, results); err != nil {
				return err
			}
		} else {
			fmt.Print(renderReport(results))
		}

		if checkStrict {
			for _, result := range results {
				if !result.Valid {
					return fmt.Errorf("theme validation failed")
				}
			}
		}
		return nil
	},
}
