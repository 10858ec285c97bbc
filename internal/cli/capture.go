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
	"daybook/internal/timeparse"
)

// captureDraft is a journal item assembled from one quick-capture line.
type captureDraft struct {
	Title    string         `json:"title"`
	Section  string         `json:"section,omitempty"`
	Due      string         `json:"due,omitempty"`
	Rule     string         `json:"rule,omitempty"`
	Repeat   string         `json:"repeat,omitempty"`
	Clusters []string       `json:"clusters"`
	Events   []events.Event `json:"events"`
}

type captureInput struct {
	Title   string
	Section string
	Date    string
	Every   string
	Tags    []string
}

func newCaptureCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "capture [line]",
		Short: "Turn a quick-capture line into a draft entry",
		Example: `  daybook capture 'Call the plumber #home ::Chores @tomorrow'
  daybook capture 'Stretch every:"mon and thu" #health'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			line, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			draft, err := buildCapture(line, app.Now(), app.Location, app.Config.Clusters)
			if err != nil {
				return err
			}
			app.Logger.Debug("captured draft",
				zap.String("title", draft.Title),
				zap.String("due", draft.Due),
				zap.String("rule", draft.Rule))
			if app.wantJSON(asJSON) {
				return writeJSON(cmd.OutOrStdout(), draft)
			}
			renderCapture(cmd.OutOrStdout(), draft)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func buildCapture(line string, now time.Time, loc *time.Location, known []string) (captureDraft, error) {
	input, err := parseQuickCapture(line, now, loc)
	if err != nil {
		return captureDraft{}, err
	}
	draft := captureDraft{
		Title:   input.Title,
		Section: input.Section,
	}

	if strings.TrimSpace(input.Every) != "" {
		draft.Rule, err = recurrence.ParseEvery(input.Every)
		if err != nil {
			return captureDraft{}, err
		}
	} else if cleanTitle, rule, ok := recurrence.ExtractFromText(draft.Title); ok {
		draft.Title = cleanTitle
		draft.Rule = rule
	}
	draft.Repeat = recurrence.HumanizeRule(draft.Rule)

	if input.Date != "" {
		due, err := timeparse.ParseDate(input.Date, now, loc)
		if err != nil {
			return captureDraft{}, err
		}
		draft.Due = due.Format("2006-01-02")
	}

	tagText := draft.Title
	for _, tag := range input.Tags {
		tagText += " #" + tag
	}
	draft.Clusters = cluster.Tag(tagText, known).Sorted()
	draft.Events = events.Extract(draft.Title, timeparse.Midnight(now, loc))
	return draft, nil
}

func parseQuickCapture(line string, now time.Time, loc *time.Location) (captureInput, error) {
	input := captureInput{}
	titleParts := []string{}

	for _, token := range splitQuickCapture(line) {
		if token == "" {
			continue
		}
		switch {
		case strings.HasPrefix(token, "section:"):
			input.Section = strings.TrimSpace(strings.TrimPrefix(token, "section:"))
			continue
		case strings.HasPrefix(token, "every:"):
			input.Every = strings.TrimSpace(strings.TrimPrefix(token, "every:"))
			continue
		case strings.HasPrefix(token, "::") && len(token) > 2:
			input.Section = strings.TrimSpace(strings.TrimPrefix(token, "::"))
			continue
		case strings.HasPrefix(token, "#") && len(token) > 1:
			input.Tags = append(input.Tags, strings.TrimPrefix(token, "#"))
			continue
		case strings.HasPrefix(token, "@") && len(token) > 1 && input.Date == "":
			candidate := strings.TrimSpace(strings.TrimPrefix(token, "@"))
			if parsed, err := timeparse.ParseDate(candidate, now, loc); err == nil && !parsed.IsZero() {
				input.Date = candidate
				continue
			}
		}
		titleParts = append(titleParts, token)
	}

	input.Title = strings.TrimSpace(strings.Join(titleParts, " "))
	if input.Title == "" {
		return input, fmt.Errorf("title is required")
	}
	return input, nil
}

// splitQuickCapture splits on whitespace; single or double quotes group words
// and are dropped from the token.
func splitQuickCapture(input string) []string {
	tokens := []string{}
	var buf strings.Builder
	var quote rune
	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			buf.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
		case r == ' ' || r == '\t' || r == '\n':
			if buf.Len() > 0 {
				tokens = append(tokens, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteRune(r)
		}
	}
	if buf.Len() > 0 {
		tokens = append(tokens, buf.String())
	}
	return tokens
}

func renderCapture(w io.Writer, draft captureDraft) {
	fmt.Fprintln(w, header(draft.Title))
	if draft.Section != "" {
		fmt.Fprintf(w, "  section  %s\n", draft.Section)
	}
	if draft.Due != "" {
		fmt.Fprintf(w, "  due      %s\n", draft.Due)
	}
	if draft.Rule != "" {
		fmt.Fprintf(w, "  repeats  %s %s\n", draft.Repeat, gray(draft.Rule))
	}
	if len(draft.Clusters) > 0 {
		fmt.Fprintf(w, "  clusters %s\n", strings.Join(draft.Clusters, ", "))
	}
	for _, ev := range draft.Events {
		fmt.Fprintf(w, "  event    %s %s\n", ev.Date, ev.Title)
	}
}
