package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybook/internal/cluster"
)

func newTagCmd() *cobra.Command {
	var (
		clusters []string
		asJSON   bool
		pretty   bool
	)
	cmd := &cobra.Command{
		Use:   "tag [text]",
		Short: "Infer clusters (home, work, ...) from text",
		Example: `  daybook tag "clean the kitchen, take out trash"
  daybook tag --clusters garden,music "notes about garden beds"`,
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
			known := app.Config.Clusters
			if len(clusters) > 0 {
				known = clusters
			}
			ids := cluster.Tag(text, known).Sorted()
			app.Logger.Debug("tagged text",
				zap.Strings("vocabulary", known),
				zap.Strings("clusters", ids))
			if app.wantJSON(asJSON) {
				return writeJSON(cmd.OutOrStdout(), ids)
			}
			renderClusters(cmd.OutOrStdout(), ids, pretty)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&clusters, "clusters", nil, "Known clusters for preposition cues (overrides config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Show display labels")
	return cmd
}
