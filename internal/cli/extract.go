package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybook/internal/events"
)

func newExtractCmd() *cobra.Command {
	var (
		today  string
		asJSON bool
		asICS  bool
	)
	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Find 'title on date' events in text",
		Example: `  daybook extract "Colton starts school on September 2nd"
  cat note.md | daybook extract --ics > events.ics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ref, err := app.Reference(today)
			if err != nil {
				return err
			}
			found := events.Extract(text, ref)
			app.Logger.Debug("extracted events",
				zap.Time("reference", ref),
				zap.Int("count", len(found)))
			switch {
			case asICS:
				return events.WriteICS(cmd.OutOrStdout(), found, app.Now())
			case app.wantJSON(asJSON):
				return writeJSON(cmd.OutOrStdout(), found)
			default:
				renderEvents(cmd.OutOrStdout(), found, 80)
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Reference day for year-less dates (e.g. '2025-11-01', 'next monday')")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&asICS, "ics", false, "Print an iCalendar file with all-day events")
	cmd.MarkFlagsMutuallyExclusive("json", "ics")
	return cmd
}
