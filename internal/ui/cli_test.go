package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/huddle/internal/bot"
	"github.com/javiermolinar/huddle/internal/config"
	"github.com/javiermolinar/huddle/internal/timeparse"
)

func newTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	a := NewApp(cfg)
	a.now = func() time.Time {
		return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	}
	out := &bytes.Buffer{}
	a.root.SetOut(out)
	a.root.SetErr(&bytes.Buffer{})
	a.root.SetIn(strings.NewReader(""))
	return a, out
}

func execute(a *App, args ...string) error {
	a.root.SetArgs(args)
	return a.Execute()
}

func TestFind_FromArgs(t *testing.T) {
	a, out := newTestApp(t, nil)
	err := execute(a, "find", "amy: 2 may 10:00+1h30m.", "bob: 2 may 11:00-13:00.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Common free time:\n\nSat 2 May 2026 11:00 - 11:30 (30m)\nppl: amy, bob\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestFind_FromStdin(t *testing.T) {
	a, out := newTestApp(t, nil)
	a.root.SetIn(strings.NewReader("amy: 2 may lunch.\nbob: 2 may\n13:00+2h\n"))
	if err := execute(a, "find", "--unit", "minutes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Sat 2 May 2026 13:00 - 14:00 (60 mins)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestFind_ConfiguredReport(t *testing.T) {
	cfg := config.Default()
	cfg.Report.Banner = "Free together:"
	cfg.Report.DurationUnit = "hours"
	cfg.Slots = map[string]config.SlotConfig{"tea": {Start: "16:00", Duration: "1h30m"}}

	a, out := newTestApp(t, cfg)
	if err := execute(a, "find", "amy: 2 may tea. bob: 2 may 15:00-18:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Free together:\n\nSat 2 May 2026 16:00 - 17:30 (1.5 hrs)\nppl: amy, bob\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestFind_ReferenceDate(t *testing.T) {
	a, out := newTestApp(t, nil)
	if err := execute(a, "find", "--date", "2026-10-15", "amy: 2 jan 10:00+2h. bob: 2 jan 11:00+2h"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Sat 2 Jan 2027 11:00 - 12:00 (1h)") {
		t.Errorf("expected next-year window, got:\n%s", out.String())
	}
}

func TestFind_Copy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	t.Cleanup(func() { copyToClipboard = orig })
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	a, out := newTestApp(t, nil)
	if err := execute(a, "find", "--copy", "amy: 2 may 10:00-12:00. bob: 2 may 11:00-13:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if copied != strings.TrimSuffix(out.String(), "\n") {
		t.Errorf("copied %q, printed %q", copied, out.String())
	}
}

func TestFind_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(error) bool
		wantMsg string
	}{
		{
			name: "malformed message",
			args: []string{"find", "bob 1300+2h"},
			check: func(err error) bool {
				var fe *timeparse.FormatError
				return errors.As(err, &fe)
			},
		},
		{
			name:  "no message",
			args:  []string{"find"},
			check: func(err error) bool { return errors.Is(err, ErrNoMessage) },
		},
		{
			name:    "bad unit",
			args:    []string{"find", "--unit", "days", "amy: 2 may lunch"},
			wantMsg: "invalid --unit",
		},
		{
			name:    "bad date",
			args:    []string{"find", "--date", "15/10/2026", "amy: 2 may lunch"},
			wantMsg: "invalid --date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newTestApp(t, nil)
			err := execute(a, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.check != nil && !tt.check(err) {
				t.Errorf("unexpected error type: %v", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err, tt.wantMsg)
			}
			if out.Len() != 0 {
				t.Errorf("expected no output, got %q", out.String())
			}
		})
	}
}

func TestFixedTextCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"guide"}, want: bot.HelpText + "\n"},
		{args: []string{"example"}, want: bot.ExampleText + "\n"},
		{args: []string{"eg"}, want: bot.ExampleText + "\n"},
		{args: []string{"version"}, want: "huddle dev (commit: none)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			a, out := newTestApp(t, nil)
			if err := execute(a, tt.args...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestConfigCmd_Print(t *testing.T) {
	cfg := config.Default()
	cfg.Slots = map[string]config.SlotConfig{"Tea": {Start: "16:00", Duration: "30m"}}

	a, out := newTestApp(t, cfg)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := execute(a, "config", "--path", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Config file: " + path,
		"duration_unit = mixed",
		"lunch         = 12:00 +2h",
		"tea           = 16:00 +30m",
		"(configured)",
		"accent        = #89b4fa",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConfigCmd_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huddle", "config.toml")

	a, out := newTestApp(t, nil)
	if err := execute(a, "config", "--init", "--path", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Created "+path) {
		t.Errorf("unexpected output %q", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if _, err := config.LoadFrom(path); err != nil {
		t.Errorf("written config does not load: %v", err)
	}

	a, _ = newTestApp(t, nil)
	err := execute(a, "config", "--init", "--path", path)
	if !errors.Is(err, ErrConfigExists) {
		t.Errorf("expected ErrConfigExists, got %v", err)
	}
}
