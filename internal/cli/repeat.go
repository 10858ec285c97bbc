package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybook/internal/recurrence"
)

func newRepeatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repeat",
		Short: "Read and build recurrence settings",
	}
	cmd.AddCommand(newRepeatDescribeCmd())
	cmd.AddCommand(newRepeatHumanizeCmd())
	cmd.AddCommand(newRepeatPresetsCmd())
	cmd.AddCommand(newRepeatPickCmd())
	cmd.AddCommand(newRepeatParseCmd())
	cmd.AddCommand(newRepeatNextCmd())
	return cmd
}

func newRepeatDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [label|json]",
		Short: `Describe a repeat setting, e.g. '{"unit":"week","interval":2,"byDay":["MO"]}'`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repeat, err := parseRepeatArg(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), recurrence.DescribeRepeat(repeat))
			return nil
		},
	}
}

// parseRepeatArg reads JSON when the argument looks like JSON and treats
// anything else as a legacy label.
func parseRepeatArg(arg string) (*recurrence.Repeat, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return nil, nil
	}
	if trimmed == "null" || strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, `"`) {
		var repeat recurrence.Repeat
		if err := json.Unmarshal([]byte(trimmed), &repeat); err != nil {
			return nil, fmt.Errorf("invalid repeat json: %w", err)
		}
		return &repeat, nil
	}
	return &recurrence.Repeat{Label: trimmed}, nil
}

func newRepeatHumanizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "humanize [rule]",
		Short: "Humanize a rule such as FREQ=WEEKLY;BYDAY=MO,WE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), recurrence.HumanizeRule(args[0]))
			return nil
		},
	}
}

func newRepeatPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List quick-pick presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderPresets(cmd.OutOrStdout())
			return nil
		},
	}
}

func renderPresets(w io.Writer) {
	for _, p := range recurrence.Presets {
		fmt.Fprintf(w, "%-14s %-32s %s\n", p.Name, p.Rule, gray(recurrence.HumanizeRule(p.Rule)))
	}
}

func newRepeatPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a preset interactively and print its rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			options := make([]string, 0, len(recurrence.Presets))
			for _, p := range recurrence.Presets {
				options = append(options, p.Name)
			}
			prompt := &survey.Select{
				Message: "Repeat",
				Options: options,
				Description: func(value string, index int) string {
					return recurrence.HumanizeRule(recurrence.Presets[index].Rule)
				},
				PageSize: len(options),
			}
			var selected string
			if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
				return err
			}
			rule, ok := recurrence.PresetRule(selected)
			if !ok {
				return fmt.Errorf("invalid preset selection")
			}
			fmt.Fprintln(cmd.OutOrStdout(), rule)
			return nil
		},
	}
}

func newRepeatParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [phrase]",
		Short: "Turn a phrase like 'every other day' or 'mon and thu' into a rule",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := recurrence.ParseEvery(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", rule, gray(recurrence.HumanizeRule(rule)))
			return nil
		},
	}
}

func newRepeatNextCmd() *cobra.Command {
	var (
		count int
		from  string
	)
	cmd := &cobra.Command{
		Use:   "next [rule|preset|phrase]",
		Short: "Preview the next dates of a recurrence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			rule, err := recurrence.ParseEvery(strings.Join(args, " "))
			if err != nil {
				return err
			}
			start, err := app.Reference(from)
			if err != nil {
				return err
			}
			// After is exclusive; step back so the start day itself is listed.
			after := start.Add(-1)
			dates, err := recurrence.NextOccurrences(rule, start, after, count, app.Location)
			if err != nil {
				return err
			}
			app.Logger.Debug("expanded recurrence",
				zap.String("rule", rule),
				zap.Time("start", start),
				zap.Int("count", len(dates)))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, header(recurrence.HumanizeRule(rule)))
			for _, d := range dates {
				fmt.Fprintf(out, "  %s %s\n", d.Format("2006-01-02"), gray(d.Format("Mon")))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of dates to show")
	cmd.Flags().StringVar(&from, "from", "", "First day to consider (default today)")
	return cmd
}
