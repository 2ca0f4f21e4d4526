package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hueforge/huebuild/internal/themes"
	"github.com/hueforge/huebuild/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive theme picker",
	Long:  "Browse themes with validation badges, select one, and toggle dark mode.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return fmt.Errorf("the theme picker requires an interactive terminal")
		}

		database, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		set, err := themes.LoadSet(GetConfig().ThemesDir)
		if err != nil {
			return err
		}

		holder := newHolder(cmd, database)

		return tui.Run(tui.Config{Set: set, Holder: holder})
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
