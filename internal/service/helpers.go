package service

import (
	"fmt"
	"time"
)

// scheduledTimeLayouts covers RFC3339 plus the zone-less shapes the HTML
// datetime-local input produces.
var scheduledTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func ParseScheduledTime(value string) (time.Time, error) {
	for _, layout := range scheduledTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid scheduled time format: %q", value)
}
