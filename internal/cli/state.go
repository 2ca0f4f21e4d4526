package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hueforge/huebuild/internal/db"
	"github.com/hueforge/huebuild/internal/events"
	"github.com/hueforge/huebuild/internal/logging"
	"github.com/hueforge/huebuild/internal/state"
	"github.com/hueforge/huebuild/internal/themes"
)

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(darkCmd)
	rootCmd.AddCommand(statusCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <theme-id>",
	Short: "Select the active color theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		holder := newHolder(cmd, database)

		set, err := themes.LoadSet(GetConfig().ThemesDir)
		if err != nil {
			return err
		}
		if _, err := set.Find(state.Sanitize(args[0])); err != nil {
			logger.Warn().Str("id", args[0]).Msg("theme id is not in the loaded theme set")
		}

		previous := holder.State().ColorTheme
		holder.SetColorTheme(args[0])
		current := holder.State().ColorTheme

		if current != previous {
			repo := db.NewEventRepository(database)
			if err := events.LogThemeChanged(cmd.Context(), repo, previous, current); err != nil {
				logger.Debug().Err(err).Msg("failed to record theme event")
			}
		}

		return printState(holder)
	},
}

var darkCmd = &cobra.Command{
	Use:   "dark on|off|toggle",
	Short: "Control dark mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		holder := newHolder(cmd, database)
		previous := holder.State().DarkMode

		switch strings.ToLower(args[0]) {
		case "on":
			holder.SetDarkMode(true)
		case "off":
			holder.SetDarkMode(false)
		case "toggle":
			holder.ToggleDarkMode()
		default:
			return fmt.Errorf("expected on, off or toggle, got %q", args[0])
		}

		if current := holder.State().DarkMode; current != previous {
			repo := db.NewEventRepository(database)
			if err := events.LogDarkModeChanged(cmd.Context(), repo, current); err != nil {
				logger.Debug().Err(err).Msg("failed to record dark mode event")
			}
		}

		return printState(holder)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active theme selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		return printState(newHolder(cmd, database))
	},
}

// newHolder builds the theme-state holder for one command invocation,
// backed by the state database and the environment's dark preference.
func newHolder(cmd *cobra.Command, database *db.DB) *state.Holder {
	prefs := db.NewPrefRepository(database)
	return state.New(
		logging.Component(logger, "state"),
		state.WithStore(prefs.Bound(cmd.Context())),
		state.WithAmbientDark(ambientDark),
	)
}

func printState(holder *state.Holder) error {
	snapshot := holder.State()

	if IsJSONOutput() {
		return WriteOutput(os.Stdout, StatusPayload{
			ColorTheme: snapshot.ColorTheme,
			DarkMode:   snapshot.DarkMode,
			Classes:    holder.Markers().Classes(),
		})
	}

	fmt.Printf("theme: %s\n", snapshot.ColorTheme)
	fmt.Printf("dark mode: %s\n", formatYesNo(snapshot.DarkMode))
	fmt.Printf("classes: %s\n", strings.Join(holder.Markers().Classes(), " "))
	return nil
}

// StatusPayload is the payload printed by `huebuild status --json`.
type StatusPayload struct {
	ColorTheme string   `json:"color_theme"`
	DarkMode   bool     `json:"dark_mode"`
	Classes    []string `json:"classes"`
}
