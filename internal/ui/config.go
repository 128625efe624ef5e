package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/huddle/internal/config"
	"github.com/javiermolinar/huddle/internal/report"
)

// ErrConfigExists is returned by config --init when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

func (a *App) configCmd() *cobra.Command {
	var initFile bool
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration in effect after defaults, the config file and
HUDDLE_* environment variables are applied.

With --init, write the default configuration to the config file.

Example:
  huddle config
  huddle config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if initFile {
				return initConfig(out, path)
			}
			fmt.Fprintf(out, "Config file: %s\n\n", path)
			printConfig(out, a.config)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write the default configuration file")
	cmd.Flags().StringVar(&path, "path", config.DefaultConfigPath(), "Config file path")
	_ = cmd.Flags().MarkHidden("path")

	return cmd
}

func initConfig(out io.Writer, path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[report]")
	fmt.Fprintf(out, "  duration_unit = %s\n", cfg.Report.DurationUnit)
	fmt.Fprintf(out, "  banner        = %s\n", cfg.Report.Banner)

	fmt.Fprintln(out, "\n[slots]")
	slots, err := cfg.SlotTable()
	if err != nil {
		fmt.Fprintf(out, "  %s\n", formatMuted(err.Error()))
	}
	configured := make(map[string]bool, len(cfg.Slots))
	for name := range cfg.Slots {
		configured[strings.ToLower(name)] = true
	}
	for _, name := range slots.Names() {
		slot, _ := slots.Lookup(name)
		marker := ""
		if configured[name] {
			marker = formatMuted("  (configured)")
		}
		fmt.Fprintf(out, "  %-13s = %s +%s%s\n", name, clock(slot.Start), report.FormatDuration(slot.Duration, report.UnitMixed), marker)
	}

	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  level         = %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  path          = %s\n", orDefault(cfg.Log.Path, "(stderr for commands, off for chat)"))

	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  accent        = %s\n", cfg.UI.Accent)
}

func orDefault(v, def string) string {
	if v == "" {
		return formatMuted(def)
	}
	return v
}

// clock formats an offset from midnight as HH:MM.
func clock(d time.Duration) string {
	total := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
