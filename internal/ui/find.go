package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/huddle/internal/report"
	"github.com/javiermolinar/huddle/internal/timeparse"
)

// ErrNoMessage is returned when find gets neither arguments nor piped input.
var ErrNoMessage = errors.New("no message: pass it as arguments or pipe it on stdin")

const refDateLayout = "2006-01-02"

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func (a *App) findCmd() *cobra.Command {
	var (
		noColor bool
		copyOut bool
		unit    string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "find [message...]",
		Short: "Print the common free time for a message",
		Long: `Read a message with everyone's free times and print every window
shared by two or more people.

The message comes from the arguments, or from stdin when piped.

Example:
  huddle find "alice: 2 may 10:00+2h. bob: 2 may 11:00-13:00"
  echo "alice: 2 may lunch. bob: 2 may 13:00+2h" | huddle find --unit minutes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readMessage(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			now := a.now
			if date != "" {
				ref, err := time.ParseInLocation(refDateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
				}
				now = func() time.Time { return ref }
			}

			opts := a.formatterOptions()
			if unit != "" {
				if !report.Unit(unit).Valid() {
					return fmt.Errorf("invalid --unit %q, expected mixed, minutes or hours", unit)
				}
				opts = append(opts, report.WithUnit(report.Unit(unit)))
			}
			plain := report.New(opts...)

			logger, err := a.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			b, err := a.newBot(logger, plain, now)
			if err != nil {
				return err
			}

			common, err := b.Common(text)
			if err != nil {
				var fe *timeparse.FormatError
				if errors.As(err, &fe) {
					return fe
				}
				return err
			}

			out := cmd.OutOrStdout()
			colored := !noColor && isTerminal(out)
			styled := report.New(append(opts, report.WithStyle(reportStyle(colored)))...)
			fmt.Fprintln(out, styled.Format(common))

			if copyOut {
				if err := copyToClipboard(plain.Format(common)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("Copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the plain report to the clipboard")
	cmd.Flags().StringVar(&unit, "unit", "", "Duration unit: mixed, minutes or hours")
	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD) for year inference")

	return cmd
}

// readMessage joins args, or reads all of in when there are none. Line breaks
// in piped input count as spaces.
func readMessage(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if isTerminal(in) {
		return "", ErrNoMessage
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := strings.Join(strings.Fields(string(data)), " ")
	if text == "" {
		return "", ErrNoMessage
	}
	return text, nil
}
