package cmd

import (
	"fmt"
	"time"
)

var timeLayouts = []string{"15:04:05", "15:04"}

// parseAt resolves an --at value (HH:MM or HH:MM:SS, fractional seconds
// allowed) to that time of day on now's date. An empty value means now.
func parseAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		y, m, d := now.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("invalid --at %q: want HH:MM or HH:MM:SS", value)
}

// fixedClock always reports the same instant.
type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }
