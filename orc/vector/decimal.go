package vector

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalVector is implemented by both concrete decimal vector layouts.
// Both are driven through the same Set, which rounds the incoming value
// to the vector's fixed scale and nulls the slot (returning false) if
// the rounded value no longer fits the vector's precision.
type DecimalVector interface {
	Vector
	Precision() int
	Scale() int
	Get(i int) decimal.Decimal
	Set(i int, d decimal.Decimal) bool
}

// NewDecimalVector picks the packed Decimal64Vector representation for
// precision <= 18 (fits an int64 mantissa) and the arbitrary-precision
// Decimal128Vector otherwise.
func NewDecimalVector(n, precision, scale int) DecimalVector {
	if precision <= 18 {
		return NewDecimal64Vector(n, precision, scale)
	}
	return NewDecimal128Vector(n, precision, scale)
}

func fitsPrecision(coefficient string, precision int) bool {
	digits := strings.TrimLeft(strings.TrimPrefix(coefficient, "-"), "0")
	if digits == "" {
		return true
	}
	return len(digits) <= precision
}

// Decimal64Vector stores each value as a scaled int64 mantissa, avoiding a
// decimal.Decimal allocation per row for the common case (precision <= 18)
// at the cost of an allocation on Get.
type Decimal64Vector struct {
	base
	precision int
	scale     int
	Unscaled  []int64
}

// NewDecimal64Vector allocates the packed layout. The caller is
// responsible for precision <= 18.
func NewDecimal64Vector(n, precision, scale int) *Decimal64Vector {
	v := &Decimal64Vector{precision: precision, scale: scale}
	v.Resize(n)
	v.Reset(n)
	return v
}

func (v *Decimal64Vector) Precision() int { return v.precision }
func (v *Decimal64Vector) Scale() int     { return v.scale }
func (v *Decimal64Vector) Len() int       { return len(v.Unscaled) }

func (v *Decimal64Vector) Resize(n int) {
	if cap(v.Unscaled) < n {
		grown := make([]int64, n)
		copy(grown, v.Unscaled)
		v.Unscaled = grown
	}
	v.ensureMaskCap(n)
}

func (v *Decimal64Vector) Reset(n int) {
	v.Resize(n)
	v.Unscaled = v.Unscaled[:n]
	v.resetMask(n)
}

func (v *Decimal64Vector) Get(i int) decimal.Decimal {
	return decimal.New(v.Unscaled[i], int32(-v.scale))
}

// Set rescales d to the vector's fixed scale and stores its mantissa. It
// returns false (and leaves the row null) if the rescaled coefficient
// overflows either the vector's precision or an int64 lane.
func (v *Decimal64Vector) Set(i int, d decimal.Decimal) bool {
	rescaled := d.Round(int32(v.scale))
	coeff := rescaled.Coefficient()
	if !fitsPrecision(coeff.String(), v.precision) {
		v.SetNull(i, true)
		return false
	}
	if !coeff.IsInt64() {
		v.SetNull(i, true)
		return false
	}
	v.Unscaled[i] = coeff.Int64()
	v.SetNull(i, false)
	return true
}

// Decimal128Vector stores each row as a full decimal.Decimal, for
// precision > 18 where a packed int64 mantissa cannot hold every value.
type Decimal128Vector struct {
	base
	precision int
	scale     int
	Values    []decimal.Decimal
}

// NewDecimal128Vector allocates the arbitrary-precision layout. Usable
// at any precision, for callers that do not want the packed variant.
func NewDecimal128Vector(n, precision, scale int) *Decimal128Vector {
	v := &Decimal128Vector{precision: precision, scale: scale}
	v.Resize(n)
	v.Reset(n)
	return v
}

func (v *Decimal128Vector) Precision() int { return v.precision }
func (v *Decimal128Vector) Scale() int     { return v.scale }
func (v *Decimal128Vector) Len() int       { return len(v.Values) }

func (v *Decimal128Vector) Resize(n int) {
	if cap(v.Values) < n {
		grown := make([]decimal.Decimal, n)
		copy(grown, v.Values)
		v.Values = grown
	}
	v.ensureMaskCap(n)
}

func (v *Decimal128Vector) Reset(n int) {
	v.Resize(n)
	v.Values = v.Values[:n]
	v.resetMask(n)
}

func (v *Decimal128Vector) Get(i int) decimal.Decimal {
	return v.Values[i]
}

// Set rescales d to the vector's fixed scale and stores it, returning
// false (and nulling the row) if the rescaled coefficient overflows the
// vector's precision.
func (v *Decimal128Vector) Set(i int, d decimal.Decimal) bool {
	rescaled := d.Round(int32(v.scale))
	if !fitsPrecision(rescaled.Coefficient().String(), v.precision) {
		v.SetNull(i, true)
		return false
	}
	v.Values[i] = rescaled
	v.SetNull(i, false)
	return true
}
