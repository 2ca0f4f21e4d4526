package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hueforge/huebuild/internal/db"
	"github.com/hueforge/huebuild/internal/models"
)

var (
	eventsType  string
	eventsLimit int
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().StringVar(&eventsType, "type", "", "filter by event type")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 20, "max events to list")
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the theme change audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewEventRepository(database)

		query := db.EventQuery{Limit: eventsLimit}
		if eventsType != "" {
			eventType := models.EventType(eventsType)
			query.Type = &eventType
		}

		entries, err := repo.List(cmd.Context(), query)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, entries)
		}

		rows := make([][]string, 0, len(entries))
		for _, event := range entries {
			rows = append(rows, []string{
				event.Timestamp.Local().Format(time.DateTime),
				string(event.Type),
				string(event.Payload),
			})
		}
		return writeTable(os.Stdout, []string{"TIME", "TYPE", "PAYLOAD"}, rows)
	},
}
