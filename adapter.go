package datetime

import (
	"time"

	"github.com/pkg/errors"
)

// DateTime is the transmitted record: a single timestamp field holding
// the ISO-8601 rendering of an instant.
type DateTime struct {
	Timestamp Timestamp `json:"timestamp"`
}

var ErrInvalidDate = errors.New("invalid date")

func DateToDateTime(d Date) (DateTime, error) {
	if !d.IsValid() {
		return DateTime{}, ErrInvalidDate
	}

	return DateTime{Timestamp: TimestampFromTime(d.Time())}, nil
}

// DateTimeToDate never fails: a timestamp that does not parse yields the
// invalid date, and callers check validity themselves.
func DateTimeToDate(dt DateTime) Date {
	t, err := time.Parse(time.RFC3339, string(dt.Timestamp))
	if err != nil {
		return InvalidDate()
	}

	return DateFromTime(t)
}
