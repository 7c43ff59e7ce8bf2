package timetables

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFeedTime parses a GTFS HH:MM:SS value into seconds since the start of
// the service day. Hours may legitimately exceed 23 for trips that run past
// midnight on the same service day, so values like 25:10:00 are accepted and
// order after 23:59:59.
func ParseFeedTime(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid feed time %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return 0, fmt.Errorf("invalid hour in feed time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in feed time %q", value)
	}
	second, err := strconv.Atoi(parts[2])
	if err != nil || second < 0 || second > 59 {
		return 0, fmt.Errorf("invalid second in feed time %q", value)
	}

	return hour*3600 + minute*60 + second, nil
}

// FormatClockTime renders service-day seconds as the wall clock HH:MM they
// fall on, wrapping post-midnight hours back onto the 24 hour clock.
func FormatClockTime(seconds int) string {
	hour := (seconds / 3600) % 24
	minute := (seconds % 3600) / 60

	return fmt.Sprintf("%02d:%02d", hour, minute)
}
