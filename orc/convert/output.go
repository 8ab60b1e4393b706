package convert

import (
	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// NewOutputVector allocates an empty vector.Vector of size n in the
// representation target.Category is carried in. Exported so a caller
// driving a Reader can build the output vector it owns and passes into
// NextBatch, and so Reader itself can size its scratch input vector.
func NewOutputVector(target *api.TypeDescription, n int) vector.Vector {
	switch {
	case target.Category.IsAnyInteger() || target.Category == api.Date:
		return vector.NewLongVector(n)
	case target.Category == api.Float || target.Category == api.Double:
		return vector.NewDoubleVector(n)
	case target.Category.IsStringGroup() || target.Category == api.Binary:
		return vector.NewBytesVector(n)
	case target.Category == api.Decimal:
		return vector.NewDecimalVector(n, target.Precision, target.Scale)
	case target.Category == api.Timestamp:
		return vector.NewTimestampVector(n)
	default:
		panic("convert: no vector representation for category " + target.Category.String())
	}
}

// newOutputVectorOpts allocates like NewOutputVector but lets the caller
// opt out of the packed decimal layout regardless of precision.
func newOutputVectorOpts(target *api.TypeDescription, n int, preferDecimal64 bool) vector.Vector {
	if target.Category == api.Decimal && !preferDecimal64 {
		return vector.NewDecimal128Vector(n, target.Precision, target.Scale)
	}
	return NewOutputVector(target, n)
}
