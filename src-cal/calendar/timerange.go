package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// ClampTimeRange repairs an inverted HH:MM range the way the event form
// expects: when both ends are present and end <= start, end becomes start
// plus one hour with the minute kept. Adding an hour to a 23:xx start would
// wrap past midnight, so the repaired end caps at 23:59 instead. Partial
// ranges pass through untouched.
func ClampTimeRange(start, end string) (string, string) {
	if start == "" || end == "" {
		return start, end
	}
	// zero-padded HH:MM compares lexicographically == chronologically
	if end > start {
		return start, end
	}

	hour, minute, ok := splitClock(start)
	if !ok {
		return start, end
	}
	if hour >= 23 {
		return start, "23:59"
	}
	return start, fmt.Sprintf("%02d:%02d", hour+1, minute)
}

func splitClock(s string) (hour int, minute int, ok bool) {
	rawHour, rawMinute, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(rawHour)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(rawMinute)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
