package convert

import (
	"math"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// integerFromDouble converts from a FLOAT or DOUBLE file column (both
// decode into a DoubleVector). Values outside the int64 range null the
// slot; otherwise truncate toward zero and apply the integer down-cast
// rule.
func integerFromDouble(readerCategory api.Category) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.DoubleVector)
		dst := out.(*vector.LongVector)
		v := src.Values[i]

		if !doubleFitsInLong(v) {
			dst.SetNull(i, true)
			return
		}

		truncated := int64(v)
		narrowed, ok := downCastInteger(truncated, readerCategory)
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, narrowed)
	}
}

// doubleFromDouble widens a FLOAT file column to DOUBLE. Both widths
// share the DoubleVector representation, so this is an identity kernel;
// keeping it lets the driver apply null/repeating propagation uniformly
// instead of special-casing the pair in the factory.
func doubleFromDouble() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.DoubleVector)
		dst := out.(*vector.DoubleVector)
		dst.Set(i, src.Values[i])
	}
}

// floatFromDouble narrows: round to nearest-even float32 and widen back
// to float64. Overflow produces +-Inf, never a null.
func floatFromDouble() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.DoubleVector)
		dst := out.(*vector.DoubleVector)
		dst.Set(i, float64(float32(src.Values[i])))
	}
}

// decimalFromDouble goes through the double's canonical decimal text;
// NaN and the infinities null the slot.
func decimalFromDouble() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.DoubleVector)
		dst := out.(vector.DecimalVector)
		d, ok := doubleToDecimal(src.Values[i])
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, d)
	}
}

// stringFromDouble formats the double's canonical text. NaN nulls the
// slot.
func stringFromDouble(readerCategory api.Category, maxLength int) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.DoubleVector)
		dst := out.(*vector.BytesVector)
		v := src.Values[i]
		if math.IsNaN(v) {
			dst.SetNull(i, true)
			return
		}
		dst.SetString(i, stringGroupTruncate(formatDouble(v), readerCategory, maxLength))
	}
}

// timestampFromDouble treats the double as seconds since epoch: whole
// seconds plus a fractional-nanosecond remainder. Non-finite values null
// the slot.
func timestampFromDouble() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.DoubleVector)
		dst := out.(*vector.TimestampVector)
		ts, ok := doubleToTimestamp(src.Values[i])
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, ts)
	}
}
