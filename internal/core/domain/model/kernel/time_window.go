package kernel

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// timeWindowSeparator splits the start and end points of a textual window.
	timeWindowSeparator = "-"
	// timeWindowParts is the exact number of points a textual window contains.
	timeWindowParts = 2

	minutesPerHour = 60
	hoursPerDay    = 24
)

// ErrTimeWindowIsNotConstructed is returned when using an improperly initialized TimeWindow.
var ErrTimeWindowIsNotConstructed = fmt.Errorf("TimeWindow must be created via NewTimeWindow or ParseTimeWindow")

// TimeWindow is a half-open time-of-day interval with minute granularity,
// expressed textually as "HH:MM-HH:MM". It is a value object: immutable and
// compared by value.
//
// Windows are used both for courier working hours and order delivery hours.
// Overlapping or duplicate windows inside one collection are permitted.
type TimeWindow struct {
	// start and end are minutes since midnight, start <= end
	start int
	end   int
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow from start and end minutes since
// midnight. Start must not exceed end, and both points must lie within a day.
func NewTimeWindow(startMinutes, endMinutes int) (TimeWindow, error) {
	maxMinute := hoursPerDay*minutesPerHour - 1
	if startMinutes < 0 || startMinutes > maxMinute {
		return TimeWindow{}, errs.NewValueIsOutOfRangeError("startMinutes", startMinutes, 0, maxMinute)
	}
	if endMinutes < 0 || endMinutes > maxMinute {
		return TimeWindow{}, errs.NewValueIsOutOfRangeError("endMinutes", endMinutes, 0, maxMinute)
	}
	if startMinutes > endMinutes {
		return TimeWindow{}, errs.NewValueIsInvalidError("startMinutes")
	}

	return TimeWindow{
		start: startMinutes,
		end:   endMinutes,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseTimeWindow parses the textual "HH:MM-HH:MM" form. The string must
// contain exactly two points separated by a hyphen.
func ParseTimeWindow(s string) (TimeWindow, error) {
	parts := strings.Split(s, timeWindowSeparator)
	if len(parts) != timeWindowParts {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("timeWindow",
			fmt.Errorf("window %q must contain exactly %d time points", s, timeWindowParts))
	}

	start, err := parseDayMinute(parts[0])
	if err != nil {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("timeWindow", err)
	}
	end, err := parseDayMinute(parts[1])
	if err != nil {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("timeWindow", err)
	}

	return NewTimeWindow(start, end)
}

// ParseTimeWindows parses a collection of textual windows, failing on the
// first invalid entry.
func ParseTimeWindows(ss []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(ss))
	for _, s := range ss {
		w, err := ParseTimeWindow(s)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// parseDayMinute converts a single "HH:MM" point into minutes since midnight.
func parseDayMinute(s string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("time point %q is not in HH:MM form: %w", s, err)
	}
	if len(s) != len("HH:MM") || s[2] != ':' {
		return 0, fmt.Errorf("time point %q is not in HH:MM form", s)
	}
	if hh < 0 || hh >= hoursPerDay || mm < 0 || mm >= minutesPerHour {
		return 0, fmt.Errorf("time point %q is out of range", s)
	}
	return hh*minutesPerHour + mm, nil
}

// Validate checks that the TimeWindow was created via a constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// StartMinutes returns the window start in minutes since midnight.
func (w TimeWindow) StartMinutes() int {
	return w.start
}

// EndMinutes returns the window end in minutes since midnight.
func (w TimeWindow) EndMinutes() int {
	return w.end
}

// Intersects reports whether two windows overlap. Both interval ends are
// inclusive, so touching boundaries count as an intersection.
func (w TimeWindow) Intersects(other TimeWindow) bool {
	return other.end >= w.start && other.start <= w.end
}

// IsEqual compares two windows by their start and end points.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start == other.start && w.end == other.end
}

// String renders the window in its textual "HH:MM-HH:MM" form.
func (w TimeWindow) String() string {
	return fmt.Sprintf("%02d:%02d%s%02d:%02d",
		w.start/minutesPerHour, w.start%minutesPerHour,
		timeWindowSeparator,
		w.end/minutesPerHour, w.end%minutesPerHour)
}

// FormatTimeWindows renders a collection of windows to their textual form.
func FormatTimeWindows(windows []TimeWindow) []string {
	out := make([]string, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.String())
	}
	return out
}
