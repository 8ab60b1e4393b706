package convert

import (
	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// integerFromTimestamp floors the instant to whole seconds (toward
// negative infinity for instants before epoch), then applies the integer
// down-cast rule.
func integerFromTimestamp(readerCategory api.Category) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.TimestampVector)
		dst := out.(*vector.LongVector)

		seconds := src.Seconds[i]
		narrowed, ok := downCastInteger(seconds, readerCategory)
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, narrowed)
	}
}

// doubleFromTimestamp produces seconds since epoch as a float64,
// fractional nanoseconds in the decimal part.
func doubleFromTimestamp() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.TimestampVector)
		dst := out.(*vector.DoubleVector)
		dst.Set(i, timestampToDouble(src.Get(i)))
	}
}

// decimalFromTimestamp goes through the instant's seconds-as-double
// representation.
func decimalFromTimestamp() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.TimestampVector)
		dst := out.(vector.DecimalVector)

		d, ok := doubleToDecimal(timestampToDouble(src.Get(i)))
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, d)
	}
}

// stringFromTimestamp renders the instant as
// "YYYY-MM-DD HH:MM:SS[.fraction]", trailing zeros dropped.
func stringFromTimestamp(readerCategory api.Category, maxLength int) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.TimestampVector)
		dst := out.(*vector.BytesVector)
		text := src.Get(i).Time().Format("2006-01-02 15:04:05.999999999")
		dst.SetString(i, stringGroupTruncate(text, readerCategory, maxLength))
	}
}

// dateFromTimestamp yields the day the instant falls on, floored toward
// negative infinity.
func dateFromTimestamp() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.TimestampVector)
		dst := out.(*vector.LongVector)
		dst.Set(i, int64(timeToDate(src.Get(i)).Days))
	}
}
