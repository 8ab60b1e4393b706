package api

import "time"

// DateValue is a day count, always interpreted against the UTC calendar.
type DateValue struct {
	// Days since 1970-01-01 UTC. May be negative for dates before the epoch.
	Days int32
}

func (d DateValue) String() string {
	return d.Time().Format("2006-01-02")
}

// Time returns the UTC midnight instant for the day.
func (d DateValue) Time() time.Time {
	return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(d.Days) * 24 * time.Hour)
}

// DateFromDays builds a DateValue from a day count.
func DateFromDays(days int32) DateValue {
	return DateValue{Days: days}
}

// DateFromTime floors t (UTC) to a day count.
func DateFromTime(t time.Time) DateValue {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	days := midnight.Unix() / 86400
	return DateValue{Days: int32(days)}
}

// TimestampValue is a nanosecond-resolution instant, stored as seconds since
// the Unix epoch plus a nanosecond remainder in [0, 1e9).
type TimestampValue struct {
	Seconds int64
	Nanos   int32
}

// Time returns the UTC time.Time for this instant.
func (t TimestampValue) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC()
}

// TimestampFromTime builds a TimestampValue from a time.Time.
func TimestampFromTime(t time.Time) TimestampValue {
	return TimestampValue{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}
