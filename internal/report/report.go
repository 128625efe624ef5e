// Package report renders common intervals as readable text.
package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/huddle/internal/overlap"
)

// DefaultBanner is the first line of every report.
const DefaultBanner = "Common free time:"

// Date layouts for block headers.
const (
	dateTimeLayout = "Mon 2 Jan 2006 15:04"
	timeLayout     = "15:04"
)

// Unit selects how durations are written.
type Unit string

const (
	UnitMixed   Unit = "mixed"   // 1h30m
	UnitMinutes Unit = "minutes" // 90 mins
	UnitHours   Unit = "hours"   // 1.5 hrs
)

// Valid returns true if u is a known unit.
func (u Unit) Valid() bool {
	switch u {
	case UnitMixed, UnitMinutes, UnitHours:
		return true
	default:
		return false
	}
}

// Style decorates parts of the report, e.g. with terminal colours.
// Nil functions leave text unchanged.
type Style struct {
	Banner func(string) string
	Header func(string) string
	People func(string) string
}

// Formatter renders overlaps. It holds no state between calls.
type Formatter struct {
	banner string
	unit   Unit
	style  Style
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithBanner replaces the banner line.
func WithBanner(banner string) Option {
	return func(f *Formatter) {
		if banner != "" {
			f.banner = banner
		}
	}
}

// WithUnit sets the duration unit. Unknown units are ignored.
func WithUnit(unit Unit) Option {
	return func(f *Formatter) {
		if unit.Valid() {
			f.unit = unit
		}
	}
}

// WithStyle sets text decorations.
func WithStyle(style Style) Option {
	return func(f *Formatter) {
		f.style = style
	}
}

// New creates a Formatter with the default banner and mixed units.
func New(opts ...Option) *Formatter {
	f := &Formatter{banner: DefaultBanner, unit: UnitMixed}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders the banner followed by one block per common span, in
// chronological order. Spans starting together keep their discovery order.
func (f *Formatter) Format(o *overlap.Overlaps) string {
	entries := o.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Span.Begin.Before(entries[j].Span.Begin)
	})

	blocks := make([]string, 0, len(entries)+1)
	blocks = append(blocks, apply(f.style.Banner, f.banner))
	for _, e := range entries {
		blocks = append(blocks, f.block(e))
	}
	return strings.Join(blocks, "\n\n")
}

func (f *Formatter) block(e overlap.Entry) string {
	header := fmt.Sprintf("%s - %s (%s)",
		e.Span.Begin.Format(dateTimeLayout),
		formatEnd(e.Span.Begin, e.Span.End),
		FormatDuration(e.Span.Duration(), f.unit))
	people := "ppl: " + strings.Join(e.Labels, ", ")
	return apply(f.style.Header, header) + "\n" + apply(f.style.People, people)
}

// formatEnd omits the date when end falls on the same calendar day as begin.
func formatEnd(begin, end time.Time) string {
	if sameDay(begin, end) {
		return end.Format(timeLayout)
	}
	return end.Format(dateTimeLayout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func apply(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}
	return fn(s)
}

// FormatDuration writes d in the given unit, rounded down to whole minutes.
func FormatDuration(d time.Duration, unit Unit) string {
	minutes := int(d / time.Minute)
	switch unit {
	case UnitMinutes:
		if minutes == 1 {
			return "1 min"
		}
		return fmt.Sprintf("%d mins", minutes)
	case UnitHours:
		hours := math.Round(float64(minutes)/60*100) / 100
		if hours == 1 {
			return "1 hr"
		}
		return strconv.FormatFloat(hours, 'f', -1, 64) + " hrs"
	default:
		return formatMixed(minutes)
	}
}

// formatMixed formats minutes as a human-readable duration.
func formatMixed(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
