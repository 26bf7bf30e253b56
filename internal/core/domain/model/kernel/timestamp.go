package kernel

import (
	"time"

	"dispatch/internal/pkg/errs"
)

// TimestampLayout is the fixed textual timestamp format used at the service
// boundary, e.g. "2021-03-27T10:33:01.042953Z".
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// ParseTimestamp decodes a boundary timestamp. The input must match
// TimestampLayout exactly; the result is in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}
	return t.UTC(), nil
}

// FormatTimestamp encodes a timestamp into its boundary form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
