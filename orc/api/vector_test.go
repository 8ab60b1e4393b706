package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampRoundTrip(test *testing.T) {
	layout := "2006-01-02 15:04:05.999999999"

	cases := []string{
		"2037-01-01 00:00:00.000999",
		"2003-01-01 00:00:00.000000222",
		"1995-01-01 00:00:00.688888888",
		"1969-12-31 23:59:59.5",
	}

	for _, c := range cases {
		t1, err := time.Parse(layout, c)
		assert.NoError(test, err)

		ts := TimestampFromTime(t1)
		roundTripped := ts.Time()
		assert.True(test, t1.Equal(roundTripped), "round trip for %s", c)

		ts2 := TimestampFromTime(roundTripped)
		assert.Equal(test, ts, ts2)
	}
}

func TestDateRoundTrip(test *testing.T) {
	cases := []int32{0, 1, -1, 365, -365, 19723}

	for _, days := range cases {
		d := DateFromDays(days)
		assert.Equal(test, days, DateFromTime(d.Time()).Days)
	}
}

func TestDateString(test *testing.T) {
	assert.Equal(test, "1970-01-01", DateFromDays(0).String())
	assert.Equal(test, "1969-12-31", DateFromDays(-1).String())
}
