package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hy4ri/workout-tui/internal/api"
	"github.com/hy4ri/workout-tui/internal/config"
	"github.com/hy4ri/workout-tui/internal/host"
	"github.com/hy4ri/workout-tui/internal/logging"
	"github.com/hy4ri/workout-tui/internal/notify"
	"github.com/hy4ri/workout-tui/internal/tui"
)

var (
	configPath string
	endpoint   string
	demoMode   bool
	forceLight bool
)

var rootCmd = &cobra.Command{
	Use:   "workout-tui",
	Short: "Monthly calendar of your workouts in the terminal",
	Long: `workout-tui shows a month of workout sessions fetched from a backend.

Navigate months with [ and ], or drag across the calendar with the mouse.
Press enter (or click) on a marked day to see its workouts.

Config file: ~/.config/workout-tui/config.yaml
Run 'workout-tui init' to create one.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/workout-tui/config.yaml)")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "", "workouts API endpoint, overrides api.endpoint")
	rootCmd.Flags().BoolVar(&demoMode, "demo", false, "ignore the host section and run in demo mode")
	rootCmd.Flags().BoolVar(&forceLight, "light", false, "start in light mode")

	rootCmd.AddCommand(initCmd, versionCmd)
}

// runApp starts the main TUI application.
func runApp() error {
	store, err := config.NewStore(configPath)
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if endpoint != "" {
		cfg.API.Endpoint = endpoint
	}
	if demoMode {
		cfg.Host.Enabled = false
	}

	log, closer := openLog(cfg, filepath.Dir(store.Path()))
	defer closer.Close()
	log.Info("starting", "version", version, "config", store.Path(), "endpoint", cfg.API.Endpoint)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.UI.NotifyErrors {
		notifier = notify.Desktop{}
	}

	app := tui.NewApp(tui.Options{
		Client:     api.NewClient(cfg.API.Endpoint, cfg.API.TimeoutDuration()),
		Host:       host.FromConfig(cfg, store, log),
		Config:     cfg,
		Logger:     log,
		Notifier:   notifier,
		ForceLight: forceLight,
	})
	defer app.Close()

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// openLog opens the debug log. Logging is dropped if the file cannot be opened.
func openLog(cfg *config.Config, dir string) (*slog.Logger, io.Closer) {
	path := cfg.Log.File
	if path == "" {
		path = filepath.Join(dir, "debug.log")
	}
	log, closer, err := logging.New(path, cfg.Log.Level)
	if err != nil {
		return logging.Discard(), io.NopCloser(nil)
	}
	return log, closer
}
