package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hueforge/huebuild/internal/cssgen"
	"github.com/hueforge/huebuild/internal/models"
	"github.com/hueforge/huebuild/internal/themes"
	"github.com/hueforge/huebuild/internal/validate"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect theme definitions",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := themes.LoadSet(GetConfig().ThemesDir)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		if IsJSONOutput() {
			defs := make([]*themes.Definition, 0, len(ids))
			for _, id := range ids {
				defs = append(defs, set[id])
			}
			return WriteOutput(os.Stdout, defs)
		}

		results := validate.ValidateThemes(set.Themes())

		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			def := set[id]
			rows = append(rows, []string{
				id,
				def.Name,
				formatYesNo(len(def.Colors.Gray) > 0),
				formatYesNo(results[id].Valid),
				def.Source,
			})
		}
		return writeTable(os.Stdout, []string{"ID", "NAME", "GRAY", "VALID", "SOURCE"}, rows)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one theme and its generated CSS block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := themes.LoadSet(GetConfig().ThemesDir)
		if err != nil {
			return err
		}

		def, err := set.Find(args[0])
		if err != nil {
			return fmt.Errorf("theme %q: %w", args[0], err)
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, def)
		}

		fmt.Printf("%s (%s)\n", def.Name, def.ID)
		if def.Description != "" {
			fmt.Println(def.Description)
		}
		fmt.Printf("source: %s\n", def.Source)
		fmt.Printf("chart colors: %d primary, %d categorical, %d gradient\n",
			len(def.Colors.Charts.Primary),
			len(def.Colors.Charts.Categorical),
			len(def.Colors.Charts.Gradient),
		)

		result := validate.ValidateTheme(def.Theme)
		fmt.Print(renderReport(map[string]models.ValidationResult{def.ID: result}))

		fmt.Println()
		fmt.Print(cssgen.Generate(def.Theme))
		return nil
	},
}
