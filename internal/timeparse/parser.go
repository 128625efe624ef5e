// Package timeparse turns availability messages into labeled intervals.
//
// A message is a list of groups separated by '.', each group being a label,
// a ':' and a ','-separated list of timeslot items:
//
//	alice: 2 may 10:00+2h, 3 may lunch. bob: 2 may 11:00-13:00
//
// Items are classified by marker: '+' is a start plus a duration, '-' is a
// start and an end, anything else is a date followed by a named slot.
package timeparse

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/huddle/internal/dateutil"
	"github.com/javiermolinar/huddle/internal/interval"
)

// Grammar delimiters and markers.
const (
	groupDelimiter = "."
	labelDelimiter = ":"
	itemDelimiter  = ","
	relativeMarker = "+"
	absoluteMarker = "-"
)

var errMissingColon = errors.New("clock time must contain ':' between hour and minute")

// Parser resolves messages against a named slot table.
type Parser struct {
	slots  SlotTable
	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithSlots replaces the named slot table.
func WithSlots(slots SlotTable) Option {
	return func(p *Parser) {
		if slots != nil {
			p.slots = slots
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Parser with the default slot table.
func New(opts ...Option) *Parser {
	p := &Parser{
		slots:  DefaultSlots(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns one interval per timeslot item, in input order.
// ref anchors year inference and items without a date.
// Any malformed group or item fails the whole message with a *FormatError.
func (p *Parser) Parse(text string, ref time.Time) ([]interval.Interval, error) {
	var result []interval.Interval

	for _, group := range strings.Split(text, groupDelimiter) {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}

		label, items, err := splitGroup(group)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			iv, err := p.parseItem(item, ref)
			if err != nil {
				return nil, err
			}
			iv, swapped := interval.New(iv.Begin, iv.End, label)
			if swapped {
				p.logger.Warn("interval end before begin, endpoints swapped",
					zap.String("label", label), zap.String("item", item))
			}
			p.logger.Debug("parsed interval", zap.Stringer("interval", iv))
			result = append(result, iv)
		}
	}

	if len(result) == 0 {
		return nil, formatErr(text, "no labeled times found", nil)
	}
	return result, nil
}

// splitGroup splits "label: item, item" into the label and trimmed items.
func splitGroup(group string) (string, []string, error) {
	label, rest, ok := strings.Cut(group, labelDelimiter)
	if !ok {
		return "", nil, formatErr(group, "missing ':' after label", nil)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return "", nil, formatErr(group, "empty label", nil)
	}

	items := strings.Split(rest, itemDelimiter)
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
		if items[i] == "" {
			return "", nil, formatErr(group, "empty time item", nil)
		}
	}
	return label, items, nil
}

// parseItem resolves one timeslot item into an unlabeled interval.
func (p *Parser) parseItem(item string, ref time.Time) (interval.Interval, error) {
	switch {
	case strings.Contains(item, relativeMarker):
		return parseRelative(item, ref)
	case strings.Contains(item, absoluteMarker):
		return parseAbsolute(item, ref)
	default:
		return p.parseNamed(item, ref)
	}
}

// parseRelative resolves "DATETIME + DURATION".
func parseRelative(item string, ref time.Time) (interval.Interval, error) {
	left, right, _ := strings.Cut(item, relativeMarker)

	begin, err := parseDateTime(left, ref)
	if err != nil {
		return interval.Interval{}, formatErr(item, "bad start time", err)
	}
	d, err := ParseDuration(right)
	if err != nil {
		return interval.Interval{}, formatErr(item, "bad duration", err)
	}
	return interval.Interval{Begin: begin, End: begin.Add(d)}, nil
}

// parseAbsolute resolves "DATETIME - END" where END is a full date and time
// or a bare clock time on the start's date.
func parseAbsolute(item string, ref time.Time) (interval.Interval, error) {
	left, right, _ := strings.Cut(item, absoluteMarker)

	begin, err := parseDateTime(left, ref)
	if err != nil {
		return interval.Interval{}, formatErr(item, "bad start time", err)
	}

	right = strings.TrimSpace(right)
	if strings.Contains(right, " ") {
		end, err := parseDateTime(right, ref)
		if err != nil {
			return interval.Interval{}, formatErr(item, "bad end date and time", err)
		}
		return interval.Interval{Begin: begin, End: end}, nil
	}

	hour, minute, err := parseClock(right)
	if err != nil {
		return interval.Interval{}, formatErr(item, "bad end time", err)
	}
	end := time.Date(begin.Year(), begin.Month(), begin.Day(), hour, minute, 0, 0, begin.Location())
	if hour < begin.Hour() {
		// Ends past midnight.
		end = end.AddDate(0, 0, 1)
	}
	return interval.Interval{Begin: begin, End: end}, nil
}

// parseNamed resolves "DATE NAMED_SLOT".
func (p *Parser) parseNamed(item string, ref time.Time) (interval.Interval, error) {
	fields := strings.Fields(item)
	name := fields[len(fields)-1]

	slot, ok := p.slots.Lookup(name)
	if !ok {
		return interval.Interval{}, formatErr(item, "unknown named slot "+strconv.Quote(name), nil)
	}
	day, err := resolveDate(strings.Join(fields[:len(fields)-1], " "), ref)
	if err != nil {
		return interval.Interval{}, formatErr(item, "bad date", err)
	}

	// Wall-clock start, so a DST change earlier in the day does not shift it.
	begin := time.Date(day.Year(), day.Month(), day.Day(), 0, int(slot.Start/time.Minute), 0, 0, day.Location())
	return interval.Interval{Begin: begin, End: begin.Add(slot.Duration)}, nil
}

// parseDateTime parses free-form date text plus one "H:MM" clock token.
func parseDateTime(s string, ref time.Time) (time.Time, error) {
	fields := strings.Fields(s)

	clock := -1
	for i, f := range fields {
		if strings.Contains(f, labelDelimiter) {
			if clock >= 0 {
				return time.Time{}, errors.New("more than one clock time")
			}
			clock = i
		}
	}
	if clock < 0 {
		return time.Time{}, errMissingColon
	}

	hour, minute, err := parseClock(fields[clock])
	if err != nil {
		return time.Time{}, err
	}

	dateFields := append(append([]string{}, fields[:clock]...), fields[clock+1:]...)
	day, err := resolveDate(strings.Join(dateFields, " "), ref)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// resolveDate returns midnight of the date text, or of ref when the text is empty.
func resolveDate(s string, ref time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return dateutil.TruncateToDay(ref), nil
	}
	dm, err := dateutil.ParseDayMonth(s)
	if err != nil {
		return time.Time{}, err
	}
	return dm.Resolve(ref)
}

// parseClock parses "H:MM" or "HH:MM" on a 24-hour clock.
func parseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), labelDelimiter)
	if !ok {
		return 0, 0, errMissingColon
	}
	if len(h) == 0 || len(h) > 2 || len(m) != 2 || !isDigits(h) || !isDigits(m) {
		return 0, 0, errors.New("clock time must be H:MM or HH:MM")
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.New("hour must be between 0 and 23")
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.New("minute must be between 0 and 59")
	}
	return hour, minute, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
