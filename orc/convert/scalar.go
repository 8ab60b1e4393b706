// Package convert implements the schema-evolution type-conversion layer:
// when a reader requests a column in a logical type different from the one
// actually stored in the file, a conversion reader decodes the file's
// native representation and converts it, batch by batch, into the
// requested one. Per-element semantics (rounding, range checks,
// null-on-parse-failure) follow Apache ORC's ConvertTreeReaderFactory.
package convert

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orcstream/orcgo/orc/api"
)

// minLongAsDouble and maxLongAsDoublePlusOne bound the float64 values
// whose truncation is representable as an int64. math.MaxInt64 is not
// exactly representable as a float64, so the upper comparison is strict
// against 2^63 and the lower side uses a distance check instead of <=.
const (
	minLongAsDouble        = -0x1p63
	maxLongAsDoublePlusOne = 0x1p63
)

// doubleFitsInLong reports whether v truncates to a representable int64.
// NaN and the infinities fail both comparisons.
func doubleFitsInLong(v float64) bool {
	return minLongAsDouble-v < 1.0 && v < maxLongAsDoublePlusOne
}

// parseLong attempts a strict base-10 integer parse of s (no surrounding
// whitespace, standard integer grammar otherwise).
func parseLong(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDouble attempts a strict float parse of s, accepting the forms
// strconv recognizes (signed decimal, scientific notation, "NaN",
// "Inf"/"+Inf"/"-Inf"). Surrounding whitespace is never trimmed; a padded
// string is a parse failure.
func parseDouble(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDecimal attempts a strict decimal parse of s.
func parseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

const timestampLayout = "2006-01-02 15:04:05.999999999"
const dateLayout = "2006-01-02"

// parseTimestamp attempts a strict "YYYY-MM-DD HH:MM:SS[.fraction]" parse
// against UTC.
func parseTimestamp(s string) (api.TimestampValue, bool) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return api.TimestampValue{}, false
	}
	return api.TimestampFromTime(t.UTC()), true
}

// parseDate attempts a strict "YYYY-MM-DD" parse.
func parseDate(s string) (api.DateValue, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return api.DateValue{}, false
	}
	return api.DateFromTime(t), true
}

// downCastInteger narrows value into target: reinterpret at the narrower
// width and check the round trip reproduces value. BOOLEAN never fails:
// any non-zero value maps to 1.
func downCastInteger(value int64, target api.Category) (int64, bool) {
	switch target {
	case api.Byte:
		n := int64(int8(value))
		return n, n == value
	case api.Short:
		n := int64(int16(value))
		return n, n == value
	case api.Int:
		n := int64(int32(value))
		return n, n == value
	case api.Long:
		return value, true
	case api.Boolean:
		if value != 0 {
			return 1, true
		}
		return 0, true
	default:
		return value, true
	}
}

// stringGroupTruncate applies the target category's length rule: CHAR
// right-trims trailing ASCII spaces and then truncates to maxLength
// code points; VARCHAR truncates only; STRING passes through unchanged.
// Truncation never splits a multi-byte code point.
func stringGroupTruncate(s string, category api.Category, maxLength int) string {
	switch category {
	case api.Char:
		s = strings.TrimRight(s, " ")
		return utf8Truncate(s, maxLength)
	case api.Varchar:
		return utf8Truncate(s, maxLength)
	default:
		return s
	}
}

// utf8Truncate returns the longest prefix of s with at most maxCodePoints
// runes, never splitting a multi-byte UTF-8 sequence.
func utf8Truncate(s string, maxCodePoints int) string {
	if maxCodePoints <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == maxCodePoints {
			return s[:i]
		}
		count++
	}
	return s
}

const hexDigits = "0123456789abcdef"

// binaryToHexString renders b as lowercase hex bytes separated by single
// spaces ("de ad be ef"): exactly 3*n-1 bytes for n>0, empty for n=0.
func binaryToHexString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, len(b)*3-1)
	pos := 0
	for i, c := range b {
		if i > 0 {
			out[pos] = ' '
			pos++
		}
		out[pos] = hexDigits[c>>4]
		out[pos+1] = hexDigits[c&0xf]
		pos += 2
	}
	return string(out)
}

// formatDouble renders v as the shortest decimal text that parses back to
// v exactly.
func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// bytesToString UTF-8 decodes b. Invalid sequences are preserved
// verbatim; no validation or normalization happens here.
func bytesToString(b []byte) string {
	return string(b)
}

// longToDecimal builds a decimal for an integer value.
func longToDecimal(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

// doubleToDecimal converts v through its canonical decimal string, the
// same way HiveDecimal builds one from a double. NaN and the infinities
// have no decimal representation and yield ok=false.
func doubleToDecimal(v float64) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// decimalToDouble converts d to its nearest float64.
func decimalToDouble(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// millisToSeconds floors millis/1000 toward negative infinity, so
// negative sub-second instants round down rather than toward zero.
func millisToSeconds(millis int64) int64 {
	if millis >= 0 {
		return millis / 1000
	}
	return -(((-millis) + 999) / 1000)
}

// daysToMillis converts a day count into midnight-of-that-day in
// milliseconds since epoch.
func daysToMillis(days int32) int64 {
	return int64(days) * 86400000
}

// timestampToDouble returns seconds since epoch as a float64, fractional
// nanoseconds folded into the decimal part.
func timestampToDouble(ts api.TimestampValue) float64 {
	return float64(ts.Seconds) + float64(ts.Nanos)/1e9
}

// doubleToTimestamp splits v into whole seconds and a nanosecond
// remainder in [0, 1e9). Returns ok=false if v is not finite or its
// second count cannot be held in an int64.
func doubleToTimestamp(v float64) (api.TimestampValue, bool) {
	if !doubleFitsInLong(v) {
		return api.TimestampValue{}, false
	}
	whole := math.Floor(v)
	seconds := int64(whole)
	nanos := int32(math.Round((v - whole) * 1e9))
	if nanos >= 1e9 {
		seconds++
		nanos -= 1e9
	}
	return api.TimestampValue{Seconds: seconds, Nanos: nanos}, true
}

// decimalToTimestamp converts d, interpreted as seconds since epoch, via
// the same double-seconds path doubleToTimestamp uses.
func decimalToTimestamp(d decimal.Decimal) (api.TimestampValue, bool) {
	return doubleToTimestamp(decimalToDouble(d))
}

// timeToDate floors a timestamp to the UTC day it falls in.
func timeToDate(ts api.TimestampValue) api.DateValue {
	return api.DateFromTime(ts.Time())
}
