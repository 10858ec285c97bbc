package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"daybook/internal/config"
	"daybook/internal/paths"
	"daybook/internal/timeparse"
)

type App struct {
	Config     *config.Config
	ConfigPath string
	Location   *time.Location
	Logger     *zap.Logger
	// Clock is overridden in tests.
	Clock func() time.Time
}

// Now returns the current time in the app's configured location.
// Always use this instead of caching time at startup.
func (a *App) Now() time.Time {
	clock := a.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().In(a.Location)
}

// Reference resolves the --today flag into the day used to place year-less
// dates. Empty input means the current day.
func (a *App) Reference(today string) (time.Time, error) {
	now := a.Now()
	ref, err := timeparse.ParseDate(today, now, a.Location)
	if err != nil {
		return time.Time{}, err
	}
	if ref.IsZero() {
		return timeparse.Midnight(now, a.Location), nil
	}
	return ref, nil
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "daybook",
		Short:         "Journal helpers: find dates, tag clusters, read recurrences",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			return startScratch(app)
		},
	}
	cmd.PersistentFlags().String("config", "", "Path to config.json (defaults to ~/.config/daybook/config.json)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging to stderr")

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newCaptureCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newRepeatCmd())
	cmd.AddCommand(newScratchCmd())
	cmd.AddCommand(newTagCmd())

	return cmd
}

func initApp(cmd *cobra.Command) (*App, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := newLogger(verbose)
	if err != nil {
		return nil, err
	}
	cfgPath, err := resolveConfigPath(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	loc, err := timeparse.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	logger.Debug("config loaded",
		zap.String("path", cfgPath),
		zap.String("timezone", loc.String()),
		zap.Strings("clusters", cfg.Clusters))
	return &App{
		Config:     cfg,
		ConfigPath: cfgPath,
		Location:   loc,
		Logger:     logger,
	}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func resolveConfigPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return path, nil
	}
	return paths.ConfigPath()
}

func (a *App) SaveConfig() error {
	if a == nil || a.Config == nil || a.ConfigPath == "" {
		return fmt.Errorf("config is not initialized")
	}
	return config.Save(a.ConfigPath, a.Config)
}

func (a *App) wantJSON(flag bool) bool {
	return flag || (a.Config != nil && a.Config.Output == config.OutputJSON)
}

func (a *App) sync() {
	if a != nil && a.Logger != nil {
		_ = a.Logger.Sync()
	}
}
