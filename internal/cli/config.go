package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daybook/internal/cluster"
	"daybook/internal/config"
	"daybook/internal/timeparse"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage local configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigTimezoneCmd())
	cmd.AddCommand(newConfigClustersCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config already exists: %s", path)
				}
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current config",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadOrCreate(path)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", path, string(data))
			return nil
		},
	}
}

func newConfigTimezoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-timezone [name]",
		Short: "Set the IANA timezone used for 'today' (or 'local')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			if _, err := timeparse.LoadLocation(args[0]); err != nil {
				return fmt.Errorf("unknown timezone %q: %w", args[0], err)
			}
			app.Config.Timezone = args[0]
			if err := app.SaveConfig(); err != nil {
				return err
			}
			app.Logger.Debug("timezone updated", zap.String("timezone", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "timezone set to %s\n", args[0])
			return nil
		},
	}
}

func newConfigClustersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Show the known cluster vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			renderClusters(cmd.OutOrStdout(), app.Config.Clusters, true)
			return nil
		},
	}
	cmd.AddCommand(newConfigClustersAddCmd())
	cmd.AddCommand(newConfigClustersRemoveCmd())
	cmd.AddCommand(newConfigClustersPickCmd())
	return cmd
}

func newConfigClustersAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name...]",
		Short: "Add clusters to the vocabulary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			for _, name := range args {
				if !app.Config.AddCluster(name) {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped %q (empty or already known)\n", name)
				}
			}
			return app.SaveConfig()
		},
	}
}

func newConfigClustersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name...]",
		Short: "Remove clusters from the vocabulary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			for _, name := range args {
				if !app.Config.RemoveCluster(name) {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped %q (not in vocabulary)\n", name)
				}
			}
			return app.SaveConfig()
		},
	}
}

func newConfigClustersPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose the vocabulary interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.sync()
			options := cluster.Normalize(append(append([]string{}, app.Config.Clusters...), cluster.DefaultClusters...))
			prompt := &survey.MultiSelect{
				Message:  "Known clusters",
				Options:  options,
				Default:  app.Config.Clusters,
				PageSize: 12,
			}
			var selected []string
			if err := survey.AskOne(prompt, &selected); err != nil {
				return err
			}
			app.Config.Clusters = selected
			if err := app.SaveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d clusters saved\n", len(selected))
			return nil
		},
	}
}
