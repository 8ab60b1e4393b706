package convert

import (
	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// integerFromStringGroup does a strict decimal-integer parse, null on
// failure, then the integer down-cast rule.
func integerFromStringGroup(readerCategory api.Category) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(*vector.LongVector)

		n, ok := parseLong(bytesToString(src.Values[i]))
		if !ok {
			dst.SetNull(i, true)
			return
		}
		narrowed, ok := downCastInteger(n, readerCategory)
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, narrowed)
	}
}

// doubleFromStringGroup does a strict float parse, null on failure.
func doubleFromStringGroup() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(*vector.DoubleVector)

		v, ok := parseDouble(bytesToString(src.Values[i]))
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, v)
	}
}

// decimalFromStringGroup does a strict decimal parse, null on failure,
// precision/scale enforced by the target vector's Set.
func decimalFromStringGroup() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(vector.DecimalVector)

		d, ok := parseDecimal(bytesToString(src.Values[i]))
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, d)
	}
}

// stringFromStringGroup converts between string-group categories: the
// underlying bytes are already correct, only the target's own
// CHAR/VARCHAR trim/truncate rule needs (re-)applying.
func stringFromStringGroup(readerCategory api.Category, maxLength int) elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(*vector.BytesVector)
		dst.SetString(i, stringGroupTruncate(bytesToString(src.Values[i]), readerCategory, maxLength))
	}
}

// timestampFromStringGroup does a strict timestamp parse, null on
// failure.
func timestampFromStringGroup() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(*vector.TimestampVector)

		ts, ok := parseTimestamp(bytesToString(src.Values[i]))
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, ts)
	}
}

// dateFromStringGroup does a strict YYYY-MM-DD parse, null on failure.
func dateFromStringGroup() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(*vector.LongVector)

		d, ok := parseDate(bytesToString(src.Values[i]))
		if !ok {
			dst.SetNull(i, true)
			return
		}
		dst.Set(i, int64(d.Days))
	}
}

// binaryFromStringGroup reinterprets the already-decoded bytes as a
// binary value, for any of STRING/CHAR/VARCHAR as the file type.
func binaryFromStringGroup() elementFunc {
	return func(out, in vector.Vector, i int) {
		src := in.(*vector.BytesVector)
		dst := out.(*vector.BytesVector)
		row := make([]byte, len(src.Values[i]))
		copy(row, src.Values[i])
		dst.Set(i, row)
	}
}
