package convert

import (
	"strconv"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// anyIntegerFromAnyInteger converts within the integer family: down-cast
// with a range check when the target's rank is lower, pass through
// unchanged otherwise. BOOLEAN is the one target that never nulls: any
// non-zero value maps to 1.
func anyIntegerFromAnyInteger(fileCategory, readerCategory api.Category) elementFunc {
	narrowing := isNarrowing(fileCategory, readerCategory)
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.LongVector)
		dst := out.(*vector.LongVector)
		value := src.Values[i]

		if readerCategory == api.Boolean {
			if value != 0 {
				dst.Set(i, 1)
			} else {
				dst.Set(i, 0)
			}
			return
		}

		if !narrowing {
			dst.Set(i, value)
			return
		}

		narrowed, ok := downCastInteger(value, readerCategory)
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, narrowed)
	}
}

// doubleFromInteger widens an integer to float64. A NaN result nulls the
// slot, though no finite int64 can produce one.
func doubleFromInteger() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.LongVector)
		dst := out.(*vector.DoubleVector)
		v := float64(src.Values[i])
		if v != v {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, v)
	}
}

// decimalFromInteger builds a decimal from the int64 and lets the target
// vector's Set enforce precision/scale.
func decimalFromInteger() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.LongVector)
		dst := out.(vector.DecimalVector)
		dst.Set(i, longToDecimal(src.Values[i]))
	}
}

// stringFromInteger formats the int64 in base-10 ASCII. A BOOLEAN file
// column instead yields the literals "TRUE"/"FALSE".
func stringFromInteger(fileCategory, readerCategory api.Category, maxLength int) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.LongVector)
		dst := out.(*vector.BytesVector)
		value := src.Values[i]

		var text string
		if fileCategory == api.Boolean {
			if value != 0 {
				text = "TRUE"
			} else {
				text = "FALSE"
			}
		} else {
			text = strconv.FormatInt(value, 10)
		}

		dst.SetString(i, stringGroupTruncate(text, readerCategory, maxLength))
	}
}

// timestampFromInteger treats the int64 as milliseconds since epoch.
func timestampFromInteger() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.LongVector)
		dst := out.(*vector.TimestampVector)
		millis := src.Values[i]
		seconds := millisToSeconds(millis)
		remainderMillis := millis - seconds*1000
		dst.Set(i, api.TimestampValue{Seconds: seconds, Nanos: int32(remainderMillis) * 1000000})
	}
}
