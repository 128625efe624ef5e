// Package bot answers one chat message at a time with a common free time report.
package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/javiermolinar/huddle/internal/interval"
	"github.com/javiermolinar/huddle/internal/overlap"
	"github.com/javiermolinar/huddle/internal/report"
	"github.com/javiermolinar/huddle/internal/timeparse"
)

// WelcomeText greets a new conversation.
const WelcomeText = "Hello and welcome! Send everyone's free times and I will find when they overlap. " +
	"Type help for the format or example for a sample message."

// HelpText answers the help command.
const HelpText = "Write one message with everyone's free times:\n" +
	"  name: time, time. name: time.\n\n" +
	"A time is one of:\n" +
	"  2 may 10:00+1h30m         start plus a duration (h, m, s)\n" +
	"  2 may 10:00-12:30         start to end; an earlier end means past midnight\n" +
	"  2 may 22:00-3 may 01:00   start to a full end date\n" +
	"  2 may lunch               a named slot\n\n" +
	"Named slots: breakfast, brunch, lunch, dinner, supper, morning, afternoon, night.\n" +
	"Dates are day then month (2 may, 2/5). Without a year, a month earlier than the\n" +
	"current one means next year. Clock times need a colon."

// ApologyText answers messages that failed for reasons other than their format.
const ApologyText = "Sorry, something went wrong on my side. Please try again."

// ExampleText answers the example command.
const ExampleText = "Example:\n" + timeparse.UsageExample

// messageParser turns message text into labelled intervals.
type messageParser interface {
	Parse(text string, ref time.Time) ([]interval.Interval, error)
}

// Bot turns messages into replies. It is read-only after New and safe for
// concurrent use.
type Bot struct {
	parser    messageParser
	engine    *overlap.Engine
	formatter *report.Formatter
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures a Bot.
type Option func(*settings)

type settings struct {
	slots     timeparse.SlotTable
	formatter *report.Formatter
	logger    *zap.Logger
	now       func() time.Time
}

// WithSlots sets the named-slot table.
func WithSlots(slots timeparse.SlotTable) Option {
	return func(s *settings) { s.slots = slots }
}

// WithFormatter sets the report formatter.
func WithFormatter(f *report.Formatter) Option {
	return func(s *settings) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithLogger sets the logger for the bot and the components it builds.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the source of the reference date used for year inference.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Bot.
func New(opts ...Option) *Bot {
	s := settings{
		formatter: report.New(),
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	parserOpts := []timeparse.Option{timeparse.WithLogger(s.logger)}
	if s.slots != nil {
		parserOpts = append(parserOpts, timeparse.WithSlots(s.slots))
	}

	return &Bot{
		parser:    timeparse.New(parserOpts...),
		engine:    overlap.NewEngine(s.logger),
		formatter: s.formatter,
		logger:    s.logger,
		now:       s.now,
	}
}

// Welcome returns the greeting for a new conversation.
func (b *Bot) Welcome() string {
	return WelcomeText
}

// Reply returns exactly one reply for text: a fixed text for a command, the
// report, or the corrective message when text does not follow the format.
func (b *Bot) Reply(text string) string {
	if reply, ok := command(text); ok {
		return reply
	}

	out, err := b.Report(text)
	if err == nil {
		return out
	}

	var fe *timeparse.FormatError
	if errors.As(err, &fe) {
		b.logger.Info("unreadable message", zap.String("detail", fe.Detail()))
		return fe.Error()
	}
	b.logger.Error("reply failed", zap.Error(err))
	return ApologyText
}

// Report parses text against the current reference date and renders the
// common free time. Errors are *timeparse.FormatError for bad input.
func (b *Bot) Report(text string) (string, error) {
	common, err := b.Common(text)
	if err != nil {
		return "", err
	}
	return b.formatter.Format(common), nil
}

// Common parses text against the current reference date and returns the
// common free time without rendering it.
func (b *Bot) Common(text string) (*overlap.Overlaps, error) {
	intervals, err := b.parser.Parse(text, b.now())
	if err != nil {
		return nil, fmt.Errorf("parsing message: %w", err)
	}
	common := b.engine.FindCommonIntervals(intervals)
	b.logger.Debug("found common intervals",
		zap.Int("intervals", len(intervals)),
		zap.Int("common", common.Len()))
	return common, nil
}

// command returns the fixed reply for help and example commands.
func command(text string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "help", "/help":
		return HelpText, true
	case "example", "/example", "eg":
		return ExampleText, true
	default:
		return "", false
	}
}
