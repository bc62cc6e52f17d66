package datetime

import "time"

// Timestamp is the wire form of an instant: ISO-8601 in UTC with
// exactly three fractional digits and a trailing Z.
type Timestamp string

const RFC3339Milli = "2006-01-02T15:04:05.000Z07:00"

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(RFC3339Milli))
}

func (ts Timestamp) String() string {
	return string(ts)
}
