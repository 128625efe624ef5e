package timeparse

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for tokens that are not in the compact 2h15m30s form.
var ErrInvalidDuration = errors.New("duration must look like 2h, 45m or 1h30m")

// durationPattern accepts each unit at most once, in h, m, s order.
var durationPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?$`)

var durationUnits = []time.Duration{time.Hour, time.Minute, time.Second}

// ParseDuration parses a compact relative duration such as "2h15m".
// An empty token yields zero. Units out of order, repeated units, any
// character outside [0-9hms] or a total beyond time.Duration's range fail
// the whole token.
func ParseDuration(token string) (time.Duration, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	m := durationPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	var total time.Duration
	for i, unit := range durationUnits {
		digits := m[i+1]
		if digits == "" {
			continue
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || n > math.MaxInt64/int64(unit) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
		}
		d := time.Duration(n) * unit
		if total > math.MaxInt64-d {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
		}
		total += d
	}
	return total, nil
}
