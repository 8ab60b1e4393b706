package column

import (
	"github.com/pkg/errors"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// fillVector copies the n rows of source starting at start into dst,
// resizing dst to exactly n rows first. dst must already be the
// representation schema's category is carried in (as returned by
// orc/convert's NewOutputVector for the same schema). source may be nil
// when n is 0, signaling end of column to a caller driving NextBatch in a
// loop.
func fillVector(dst vector.Vector, schema *api.TypeDescription, source vector.Vector, start, n int) error {
	dst.Reset(n)

	switch {
	case schema.Category.IsAnyInteger() || schema.Category == api.Date:
		out, ok := dst.(*vector.LongVector)
		if !ok {
			return errors.Errorf("column: expected *vector.LongVector for %s, got %T", schema.Category, dst)
		}
		src, _ := source.(*vector.LongVector)
		for i := 0; i < n; i++ {
			copyLongRow(out, i, src, start+i)
		}
		return nil

	case schema.Category == api.Float || schema.Category == api.Double:
		out, ok := dst.(*vector.DoubleVector)
		if !ok {
			return errors.Errorf("column: expected *vector.DoubleVector for %s, got %T", schema.Category, dst)
		}
		src, _ := source.(*vector.DoubleVector)
		for i := 0; i < n; i++ {
			copyDoubleRow(out, i, src, start+i)
		}
		return nil

	case schema.Category.IsStringGroup() || schema.Category == api.Binary:
		out, ok := dst.(*vector.BytesVector)
		if !ok {
			return errors.Errorf("column: expected *vector.BytesVector for %s, got %T", schema.Category, dst)
		}
		src, _ := source.(*vector.BytesVector)
		for i := 0; i < n; i++ {
			copyBytesRow(out, i, src, start+i)
		}
		return nil

	case schema.Category == api.Decimal:
		out, ok := dst.(vector.DecimalVector)
		if !ok {
			return errors.Errorf("column: expected vector.DecimalVector for %s, got %T", schema.Category, dst)
		}
		src, _ := source.(vector.DecimalVector)
		for i := 0; i < n; i++ {
			copyDecimalRow(out, i, src, start+i)
		}
		return nil

	case schema.Category == api.Timestamp:
		out, ok := dst.(*vector.TimestampVector)
		if !ok {
			return errors.Errorf("column: expected *vector.TimestampVector for %s, got %T", schema.Category, dst)
		}
		src, _ := source.(*vector.TimestampVector)
		for i := 0; i < n; i++ {
			copyTimestampRow(out, i, src, start+i)
		}
		return nil

	default:
		return errors.Errorf("column: unsupported primitive category %s", schema.Category)
	}
}

func copyLongRow(out *vector.LongVector, i int, src *vector.LongVector, j int) {
	if src == nil {
		return
	}
	if src.IsNull(j) {
		out.SetNull(i, true)
		return
	}
	out.Set(i, src.Values[j])
}

func copyDoubleRow(out *vector.DoubleVector, i int, src *vector.DoubleVector, j int) {
	if src == nil {
		return
	}
	if src.IsNull(j) {
		out.SetNull(i, true)
		return
	}
	out.Set(i, src.Values[j])
}

func copyBytesRow(out *vector.BytesVector, i int, src *vector.BytesVector, j int) {
	if src == nil {
		return
	}
	if src.IsNull(j) {
		out.SetNull(i, true)
		return
	}
	row := make([]byte, len(src.Values[j]))
	copy(row, src.Values[j])
	out.Set(i, row)
}

func copyDecimalRow(out vector.DecimalVector, i int, src vector.DecimalVector, j int) {
	if src == nil {
		return
	}
	if src.IsNull(j) {
		out.SetNull(i, true)
		return
	}
	out.Set(i, src.Get(j))
}

func copyTimestampRow(out *vector.TimestampVector, i int, src *vector.TimestampVector, j int) {
	if src == nil {
		return
	}
	if src.IsNull(j) {
		out.SetNull(i, true)
		return
	}
	out.Set(i, src.Get(j))
}
