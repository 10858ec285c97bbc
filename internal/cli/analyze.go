package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybook/internal/cluster"
	"daybook/internal/events"
	"daybook/internal/recurrence"
)

type recurrenceHint struct {
	Rule  string `json:"rule"`
	Text  string `json:"text"`
	Title string `json:"title"`
}

type analysis struct {
	Events     []events.Event  `json:"events"`
	Clusters   []string        `json:"clusters"`
	Recurrence *recurrenceHint `json:"recurrence,omitempty"`
}

func analyzeText(text string, ref time.Time, known []string) analysis {
	result := analysis{
		Events:   events.Extract(text, ref),
		Clusters: cluster.Tag(text, known).Sorted(),
	}
	if title, rule, ok := recurrence.ExtractFromText(text); ok {
		result.Recurrence = &recurrenceHint{
			Rule:  rule,
			Text:  recurrence.HumanizeRule(rule),
			Title: title,
		}
	}
	return result
}

func newAnalyzeCmd() *cobra.Command {
	var (
		today   string
		asJSON  bool
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Show events, clusters and recurrence found in text",
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
			result := analyzeText(text, ref, app.Config.Clusters)
			app.Logger.Debug("analyzed text",
				zap.Int("chars", len(text)),
				zap.Int("events", len(result.Events)),
				zap.Int("clusters", len(result.Clusters)),
				zap.Bool("recurrence", result.Recurrence != nil))
			if app.wantJSON(asJSON) {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			width := 80
			if compact {
				width = 0
			}
			renderAnalysis(cmd.OutOrStdout(), result, width)
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "Reference day for year-less dates (e.g. '2025-11-01', 'next monday')")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&compact, "no-wrap", false, "Do not wrap long titles")
	return cmd
}

func renderAnalysis(w io.Writer, result analysis, width int) {
	fmt.Fprintln(w, header("Events"))
	renderEvents(w, result.Events, width)
	fmt.Fprintln(w, header("Clusters"))
	renderClusters(w, result.Clusters, false)
	fmt.Fprintln(w, header("Repeats"))
	if result.Recurrence == nil {
		fmt.Fprintln(w, gray("  (none)"))
		return
	}
	fmt.Fprintf(w, "  %s %s\n", result.Recurrence.Text, gray(result.Recurrence.Rule))
	if result.Recurrence.Title != "" {
		fmt.Fprintf(w, "  %s\n", wrapIndent(result.Recurrence.Title, width, "  "))
	}
}

func renderEvents(w io.Writer, evs []events.Event, width int) {
	if len(evs) == 0 {
		fmt.Fprintln(w, gray("  (none)"))
		return
	}
	for _, ev := range evs {
		fmt.Fprintf(w, "  %s  %s\n", ev.Date, wrapIndent(ev.Title, width, strings.Repeat(" ", 14)))
	}
}

func renderClusters(w io.Writer, ids []string, pretty bool) {
	if len(ids) == 0 {
		fmt.Fprintln(w, gray("  (none)"))
		return
	}
	for _, id := range ids {
		if pretty {
			fmt.Fprintf(w, "  %s %s\n", cluster.Label(id), gray(id))
			continue
		}
		fmt.Fprintf(w, "  %s\n", id)
	}
}
