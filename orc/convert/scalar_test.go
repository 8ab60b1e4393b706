package convert

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcstream/orcgo/orc/api"
)

func TestParseLongStrictRoundTrip(test *testing.T) {
	cases := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 128, -300}
	for _, n := range cases {
		s := strconv.FormatInt(n, 10)
		got, ok := parseLong(s)
		assert.True(test, ok, "parse %q", s)
		assert.Equal(test, n, got)
	}
}

func TestParseLongRejectsMalformed(test *testing.T) {
	for _, s := range []string{"", "nope", "3.14", " 1", "1 ", "0x1"} {
		_, ok := parseLong(s)
		assert.False(test, ok, "expected parse failure for %q", s)
	}
}

func TestParseDoubleRejectsLeadingWhitespace(test *testing.T) {
	_, ok := parseDouble("  2.0")
	assert.False(test, ok)
}

func TestParseDoubleAcceptsSpecialValues(test *testing.T) {
	v, ok := parseDouble("NaN")
	assert.True(test, ok)
	assert.True(test, math.IsNaN(v))

	v, ok = parseDouble("Inf")
	assert.True(test, ok)
	assert.True(test, math.IsInf(v, 1))

	v, ok = parseDouble("-Inf")
	assert.True(test, ok)
	assert.True(test, math.IsInf(v, -1))
}

func TestDoubleFitsInLongBounds(test *testing.T) {
	assert.True(test, doubleFitsInLong(0))
	assert.True(test, doubleFitsInLong(-0.5))
	assert.False(test, doubleFitsInLong(1e20))
	assert.False(test, doubleFitsInLong(math.Pow(2, 63)))
	assert.False(test, doubleFitsInLong(math.NaN()))
	assert.False(test, doubleFitsInLong(math.Inf(1)))
	assert.False(test, doubleFitsInLong(math.Inf(-1)))
}

func TestDownCastIntegerByteRange(test *testing.T) {
	n, ok := downCastInteger(127, api.Byte)
	assert.True(test, ok)
	assert.Equal(test, int64(127), n)

	_, ok = downCastInteger(128, api.Byte)
	assert.False(test, ok)

	_, ok = downCastInteger(-129, api.Byte)
	assert.False(test, ok)

	n, ok = downCastInteger(-128, api.Byte)
	assert.True(test, ok)
	assert.Equal(test, int64(-128), n)
}

func TestDownCastIntegerBooleanNeverNulls(test *testing.T) {
	n, ok := downCastInteger(0, api.Boolean)
	assert.True(test, ok)
	assert.Equal(test, int64(0), n)

	n, ok = downCastInteger(-5, api.Boolean)
	assert.True(test, ok)
	assert.Equal(test, int64(1), n)
}

func TestMillisToSecondsFloorsTowardNegativeInfinity(test *testing.T) {
	assert.Equal(test, int64(1), millisToSeconds(1500))
	assert.Equal(test, int64(-1), millisToSeconds(-1))
	assert.Equal(test, int64(-1), millisToSeconds(-1000))
	assert.Equal(test, int64(-2), millisToSeconds(-1001))
	assert.Equal(test, int64(0), millisToSeconds(0))
}

func TestFormatDoubleNaNNeverReached(test *testing.T) {
	// formatDouble itself is called only after the NaN guard in
	// stringFromDouble; it still must not panic if ever invoked with one.
	s := formatDouble(math.NaN())
	assert.Equal(test, "NaN", s)
}

func TestRankOrdering(test *testing.T) {
	assert.True(test, rankOf(api.Boolean) < rankOf(api.Byte))
	assert.True(test, rankOf(api.Byte) < rankOf(api.Short))
	assert.True(test, rankOf(api.Short) < rankOf(api.Int))
	assert.True(test, rankOf(api.Int) < rankOf(api.Long))
	assert.True(test, rankOf(api.Long) < rankOf(api.Float))
	assert.True(test, rankOf(api.Float) < rankOf(api.Double))
	assert.True(test, rankOf(api.Double) < rankOf(api.Decimal))
}

func TestIsNarrowing(test *testing.T) {
	assert.True(test, isNarrowing(api.Long, api.Int))
	assert.False(test, isNarrowing(api.Int, api.Long))
	assert.False(test, isNarrowing(api.Int, api.Int))
}
