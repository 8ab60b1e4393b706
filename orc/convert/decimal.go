package convert

import (
	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// integerFromDecimal truncates toward zero to the decimal's integer
// component, then applies the integer down-cast rule. BOOLEAN maps by
// sign alone.
func integerFromDecimal(readerCategory api.Category) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(vector.DecimalVector)
		dst := out.(*vector.LongVector)
		d := src.Get(i)

		if readerCategory == api.Boolean {
			if d.Sign() != 0 {
				dst.Set(i, 1)
			} else {
				dst.Set(i, 0)
			}
			return
		}

		whole := d.BigInt()
		if !whole.IsInt64() {
			dst.SetNull(i, true)
			return
		}

		narrowed, ok := downCastInteger(whole.Int64(), readerCategory)
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, narrowed)
	}
}

// doubleFromDecimal converts to the nearest float64.
func doubleFromDecimal() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(vector.DecimalVector)
		dst := out.(*vector.DoubleVector)
		dst.Set(i, decimalToDouble(src.Get(i)))
	}
}

// decimalFromDecimal rescales: the target vector's Set enforces the
// (possibly different) precision/scale, nulling on overflow.
func decimalFromDecimal() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(vector.DecimalVector)
		dst := out.(vector.DecimalVector)
		dst.Set(i, src.Get(i))
	}
}

// stringFromDecimal formats the decimal's canonical textual form.
func stringFromDecimal(readerCategory api.Category, maxLength int) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(vector.DecimalVector)
		dst := out.(*vector.BytesVector)
		dst.SetString(i, stringGroupTruncate(src.Get(i).String(), readerCategory, maxLength))
	}
}

// timestampFromDecimal interprets the decimal as seconds since epoch,
// via the double-seconds path.
func timestampFromDecimal() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(vector.DecimalVector)
		dst := out.(*vector.TimestampVector)
		ts, ok := decimalToTimestamp(src.Get(i))
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, ts)
	}
}
