package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/huddle/internal/bot"
	"github.com/javiermolinar/huddle/internal/config"
	"github.com/javiermolinar/huddle/internal/logging"
	"github.com/javiermolinar/huddle/internal/report"
	"github.com/javiermolinar/huddle/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// DebugLogPath is where the TUI logs with --debug when no log path is configured.
const DebugLogPath = "huddle-debug.log"

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool             // Enable debug logging
	now    func() time.Time // Reference clock for year inference
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "huddle",
		Short: "Find when everyone is free",
		Long: `Huddle reads one message with everyone's free times and lists every
window in which two or more of them are free together.

Run it without arguments to open the chat, or use "huddle find" for a
one-off report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runChat()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.findCmd())
	a.root.AddCommand(a.guideCmd())
	a.root.AddCommand(a.exampleCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "huddle %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) runChat() error {
	logCfg := a.config.Log
	fallback := ""
	if a.debug {
		logCfg.Level = "debug"
		fallback = DebugLogPath
	}
	logger, err := logging.New(logCfg, fallback)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	b, err := a.newBot(logger, report.New(a.formatterOptions()...), a.now)
	if err != nil {
		return err
	}
	return tui.Run(b, a.config.UI, logger)
}

// logger builds the logger for one-shot commands, which log to stderr.
func (a *App) logger() (*zap.Logger, error) {
	logCfg := a.config.Log
	if a.debug {
		logCfg.Level = "debug"
	}
	return logging.New(logCfg, logging.Stderr)
}

func (a *App) formatterOptions() []report.Option {
	return []report.Option{
		report.WithBanner(a.config.Report.Banner),
		report.WithUnit(report.Unit(a.config.Report.DurationUnit)),
	}
}

func (a *App) newBot(logger *zap.Logger, f *report.Formatter, now func() time.Time) (*bot.Bot, error) {
	slots, err := a.config.SlotTable()
	if err != nil {
		return nil, fmt.Errorf("loading slots: %w", err)
	}
	return bot.New(
		bot.WithSlots(slots),
		bot.WithFormatter(f),
		bot.WithLogger(logger),
		bot.WithClock(now),
	), nil
}
