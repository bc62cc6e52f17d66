package datetime

import "time"

// Date is an instant with millisecond precision. The zero value is the
// invalid date; use a constructor to obtain a valid one.
type Date struct {
	millis int64
	valid  bool
}

func DateFromMillis(millis int64) Date {
	return Date{millis: millis, valid: true}
}

func DateFromTime(t time.Time) Date {
	return Date{millis: t.UnixMilli(), valid: true}
}

func Now() Date {
	return DateFromTime(time.Now())
}

func InvalidDate() Date {
	return Date{}
}

// UnixMilli returns the offset from the Unix epoch in milliseconds,
// or 0 when the date is invalid.
func (d Date) UnixMilli() int64 {
	if !d.valid {
		return 0
	}

	return d.millis
}

func (d Date) IsValid() bool {
	return d.valid
}

func (d Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}

	return time.UnixMilli(d.millis).UTC()
}

// Equal reports millisecond equality. An invalid date equals nothing,
// including another invalid date.
func (d Date) Equal(other Date) bool {
	return d.valid && other.valid && d.millis == other.millis
}

func (d Date) String() string {
	if !d.valid {
		return "invalid date"
	}

	return string(TimestampFromTime(d.Time()))
}
