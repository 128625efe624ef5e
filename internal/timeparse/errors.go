package timeparse

import "fmt"

// CorrectiveMessage is shown to the user whenever a message cannot be read.
const CorrectiveMessage = "Sorry, I could not read that. Write each person as \"name: time, time.\" " +
	"Clock times need a colon (10:00, not 1000). A time is one of:\n" +
	"  2 may 10:00+1h30m   (start plus a duration)\n" +
	"  2 may 10:00-12:30   (start to end, same day or past midnight)\n" +
	"  2 may 22:00-3 may 01:00\n" +
	"  2 may lunch         (breakfast, brunch, lunch, dinner, supper, morning, afternoon, night)"

// UsageExample is the canonical well-formed message.
const UsageExample = "alice: 2 may 10:00+2h, 3 may lunch. bob: 2 may 11:00-13:00. carol: 2 may 9:30+3h"

// FormatError reports input that does not follow the message grammar.
// Error returns only the fixed user-facing text; Reason, Input and Err are for logs.
type FormatError struct {
	Reason string
	Input  string
	Err    error
}

func (e *FormatError) Error() string {
	return CorrectiveMessage + "\n\nExample:\n" + UsageExample
}

func (e *FormatError) Unwrap() error { return e.Err }

// Detail describes what went wrong, for diagnostics.
func (e *FormatError) Detail() string {
	if e.Err != nil {
		return fmt.Sprintf("%s in %q: %v", e.Reason, e.Input, e.Err)
	}
	return fmt.Sprintf("%s in %q", e.Reason, e.Input)
}

func formatErr(input, reason string, cause error) *FormatError {
	return &FormatError{Reason: reason, Input: input, Err: cause}
}
