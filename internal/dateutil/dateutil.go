// Package dateutil provides day/month date parsing and year inference.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be a day and a month, e.g. \"2 may\" or \"2/5\"")
	ErrDayOutOfRange     = errors.New("day does not exist in that month")
)

// monthMap maps month names and abbreviations to time.Month values.
var monthMap = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
	"jan":       time.January,
	"feb":       time.February,
	"mar":       time.March,
	"apr":       time.April,
	"jun":       time.June,
	"jul":       time.July,
	"aug":       time.August,
	"sep":       time.September,
	"sept":      time.September,
	"oct":       time.October,
	"nov":       time.November,
	"dec":       time.December,
}

// weekdayNames are accepted and ignored in front of a date ("sat 2 may").
var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"mon": true, "tue": true, "tues": true, "wed": true, "thu": true,
	"thur": true, "thurs": true, "fri": true, "sat": true, "sun": true,
}

// DayMonth is a calendar date whose year may be missing.
type DayMonth struct {
	Day   int
	Month time.Month
	Year  int // 0 when the input had no year
}

// HasYear returns true if the year was given explicitly.
func (d DayMonth) HasYear() bool {
	return d.Year != 0
}

// ParseDayMonth parses free-form day/month text. Numeric dates are read
// day first. All inputs are case-insensitive. Supported forms:
//   - "2 may", "may 2", "2nd may", "sat 2 may"
//   - "2 may 2027", "may 2 2027"
//   - "2/5", "2/5/2027", "2/5/27"
func ParseDayMonth(s string) (DayMonth, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) > 0 && weekdayNames[strings.TrimSuffix(fields[0], ",")] {
		fields = fields[1:]
	}

	switch len(fields) {
	case 1:
		return parseNumericDate(fields[0])
	case 2, 3:
		return parseWordDate(fields)
	default:
		return DayMonth{}, ErrInvalidDateFormat
	}
}

// parseNumericDate parses "D/M" or "D/M/Y".
func parseNumericDate(s string) (DayMonth, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return DayMonth{}, ErrInvalidDateFormat
	}

	day, err := atoiRange(parts[0], 1, 31)
	if err != nil {
		return DayMonth{}, err
	}
	month, err := atoiRange(parts[1], 1, 12)
	if err != nil {
		return DayMonth{}, err
	}

	d := DayMonth{Day: day, Month: time.Month(month)}
	if len(parts) == 3 {
		if d.Year, err = parseYear(parts[2]); err != nil {
			return DayMonth{}, err
		}
	}
	return d, nil
}

// parseWordDate parses a day and a month name in either order, with an optional trailing year.
func parseWordDate(fields []string) (DayMonth, error) {
	var d DayMonth
	if len(fields) == 3 {
		year, err := parseYear(fields[2])
		if err != nil {
			return DayMonth{}, err
		}
		d.Year = year
		fields = fields[:2]
	}

	monthIdx := -1
	for i, f := range fields {
		if m, ok := monthMap[f]; ok {
			d.Month = m
			monthIdx = i
			break
		}
	}
	if monthIdx < 0 {
		return DayMonth{}, ErrInvalidDateFormat
	}

	day, err := parseDay(fields[1-monthIdx])
	if err != nil {
		return DayMonth{}, err
	}
	d.Day = day
	return d, nil
}

// parseDay parses a day of month with an optional ordinal suffix.
func parseDay(s string) (int, error) {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	return atoiRange(s, 1, 31)
}

func parseYear(s string) (int, error) {
	switch len(s) {
	case 2:
		y, err := atoiRange(s, 0, 99)
		if err != nil {
			return 0, err
		}
		return 2000 + y, nil
	case 4:
		return atoiRange(s, 1, 9999)
	default:
		return 0, ErrInvalidDateFormat
	}
}

func atoiRange(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, ErrInvalidDateFormat
	}
	return n, nil
}

// InferYear returns the year a year-less date in month refers to.
// If the reference month is past the parsed month the date is assumed to be
// in the upcoming year, otherwise in the reference year.
func InferYear(month time.Month, ref time.Time) int {
	if ref.Month() > month {
		return ref.Year() + 1
	}
	return ref.Year()
}

// Resolve returns midnight of the date in ref's location, inferring the year
// when it was not given. Returns ErrDayOutOfRange for dates like 31/4.
func (d DayMonth) Resolve(ref time.Time) (time.Time, error) {
	year := d.Year
	if !d.HasYear() {
		year = InferYear(d.Month, ref)
	}
	t := time.Date(year, d.Month, d.Day, 0, 0, 0, 0, ref.Location())
	if t.Day() != d.Day || t.Month() != d.Month {
		return time.Time{}, ErrDayOutOfRange
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
