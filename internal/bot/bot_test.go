package bot

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/huddle/internal/interval"
	"github.com/javiermolinar/huddle/internal/report"
	"github.com/javiermolinar/huddle/internal/timeparse"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	}
}

func newTestBot(opts ...Option) *Bot {
	return New(append([]Option{WithClock(fixedClock(2026, time.March, 10))}, opts...)...)
}

func TestReply_Commands(t *testing.T) {
	b := newTestBot()

	tests := []struct {
		input string
		want  string
	}{
		{input: "help", want: HelpText},
		{input: "/help", want: HelpText},
		{input: "  HELP \n", want: HelpText},
		{input: "example", want: ExampleText},
		{input: "/Example", want: ExampleText},
		{input: "eg", want: ExampleText},
		{input: "EG", want: ExampleText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := b.Reply(tt.input); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReply_UsageExample(t *testing.T) {
	got := newTestBot().Reply(timeparse.UsageExample)
	want := strings.Join([]string{
		"Common free time:",
		"",
		"Sat 2 May 2026 10:00 - 12:00 (2h)",
		"ppl: alice, carol",
		"",
		"Sat 2 May 2026 11:00 - 12:00 (1h)",
		"ppl: alice, bob, carol",
		"",
		"Sat 2 May 2026 11:00 - 12:30 (1h30m)",
		"ppl: bob, carol",
	}, "\n")
	if got != want {
		t.Errorf("Reply() =\n%s\nwant\n%s", got, want)
	}
}

func TestReply_RelativeDuration(t *testing.T) {
	got := newTestBot().Reply("amy: 2 may 10:00+1h30m. bob: 2 may 11:00-13:00.")
	want := "Common free time:\n\nSat 2 May 2026 11:00 - 11:30 (30m)\nppl: amy, bob"
	if got != want {
		t.Errorf("Reply() = %q, want %q", got, want)
	}
}

func TestReply_InfersNextYear(t *testing.T) {
	b := New(WithClock(fixedClock(2026, time.October, 15)))
	got := b.Reply("amy: 2 jan 10:00+2h. bob: 2 jan 11:00+2h")
	want := "Common free time:\n\nSat 2 Jan 2027 11:00 - 12:00 (1h)\nppl: amy, bob"
	if got != want {
		t.Errorf("Reply() = %q, want %q", got, want)
	}
}

func TestReply_NoOverlap(t *testing.T) {
	got := newTestBot().Reply("amy: 2 may 08:00-10:00. bob: 2 may 10:00-12:00")
	if got != report.DefaultBanner {
		t.Errorf("Reply() = %q, want only the banner", got)
	}
}

func TestReply_MalformedInput(t *testing.T) {
	inputs := []string{
		"bob 1300+2h",
		"bob: 2 may 1300+2h",
		"bob: 2 may teatime",
		"bob: 2 may 10:00+2x",
		"",
	}
	want := (&timeparse.FormatError{}).Error()

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got := newTestBot().Reply(input)
			if got != want {
				t.Errorf("Reply(%q) = %q, want corrective message", input, got)
			}
			if strings.Contains(got, "ppl:") {
				t.Errorf("Reply(%q) leaked partial output", input)
			}
		})
	}
}

func TestReply_CustomSlotsAndFormatter(t *testing.T) {
	slots := timeparse.DefaultSlots().Merge(timeparse.SlotTable{
		"tea": {Start: 16 * time.Hour, Duration: time.Hour},
	})
	b := newTestBot(
		WithSlots(slots),
		WithFormatter(report.New(report.WithBanner("Free:"), report.WithUnit(report.UnitMinutes))),
	)

	got := b.Reply("amy: 2 may tea. bob: 2 may 16:30+2h")
	want := "Free:\n\nSat 2 May 2026 16:30 - 17:00 (30 mins)\nppl: amy, bob"
	if got != want {
		t.Errorf("Reply() = %q, want %q", got, want)
	}
}

func TestReport_ReturnsFormatError(t *testing.T) {
	_, err := newTestBot().Report("bob 1300+2h")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), timeparse.UsageExample) {
		t.Errorf("error should carry the usage example, got %q", err)
	}
}

type failingParser struct{ err error }

func (p failingParser) Parse(string, time.Time) ([]interval.Interval, error) {
	return nil, p.err
}

func TestReply_InternalErrorApologises(t *testing.T) {
	b := newTestBot()
	b.parser = failingParser{err: errors.New("slot table unavailable")}

	got := b.Reply("bob: 2 may lunch")
	if got != ApologyText {
		t.Errorf("Reply() = %q, want %q", got, ApologyText)
	}
	if strings.Contains(got, "slot table unavailable") {
		t.Error("internal error text leaked into the reply")
	}
}

func TestWelcome(t *testing.T) {
	if got := newTestBot().Welcome(); !strings.HasPrefix(got, "Hello and welcome!") {
		t.Errorf("Welcome() = %q", got)
	}
}
