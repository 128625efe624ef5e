package timeparse

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Slot is a coarse named window: it starts Start after midnight and lasts Duration.
type Slot struct {
	Start    time.Duration
	Duration time.Duration
}

// SlotTable maps lower-case slot names to their windows.
type SlotTable map[string]Slot

// DefaultSlots returns the built-in named slot table.
func DefaultSlots() SlotTable {
	return SlotTable{
		"breakfast": {Start: 8 * time.Hour, Duration: time.Hour},
		"brunch":    {Start: 10 * time.Hour, Duration: 2 * time.Hour},
		"lunch":     {Start: 12 * time.Hour, Duration: 2 * time.Hour},
		"dinner":    {Start: 18 * time.Hour, Duration: 2 * time.Hour},
		"supper":    {Start: 19 * time.Hour, Duration: 2 * time.Hour},
		"morning":   {Start: 8 * time.Hour, Duration: 4 * time.Hour},
		"afternoon": {Start: 13 * time.Hour, Duration: 5 * time.Hour},
		"night":     {Start: 19 * time.Hour, Duration: 5 * time.Hour},
	}
}

// Merge returns a copy of t with overrides applied on top.
func (t SlotTable) Merge(overrides SlotTable) SlotTable {
	merged := make(SlotTable, len(t)+len(overrides))
	for name, s := range t {
		merged[name] = s
	}
	for name, s := range overrides {
		merged[strings.ToLower(name)] = s
	}
	return merged
}

// Lookup finds a slot by name, ignoring case.
func (t SlotTable) Lookup(name string) (Slot, bool) {
	s, ok := t[strings.ToLower(name)]
	return s, ok
}

// Names returns the slot names in alphabetical order.
func (t SlotTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSlot builds a slot from an "HH:MM" start and a compact duration like "1h30m".
func NewSlot(start, duration string) (Slot, error) {
	hour, minute, err := parseClock(start)
	if err != nil {
		return Slot{}, fmt.Errorf("slot start %q: %w", start, err)
	}
	d, err := ParseDuration(duration)
	if err != nil {
		return Slot{}, fmt.Errorf("slot duration: %w", err)
	}
	if d <= 0 {
		return Slot{}, fmt.Errorf("slot duration %q must be positive", duration)
	}
	return Slot{
		Start:    time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute,
		Duration: d,
	}, nil
}
