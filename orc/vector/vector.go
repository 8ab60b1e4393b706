// Package vector defines the column-vector family the conversion layer
// reads from and writes to: a fixed-capacity columnar batch with a
// shared null mask and repeating-value compression, modeled on Hive's
// ColumnVector family.
package vector

// Vector is implemented by every concrete column vector (LongVector,
// DoubleVector, BytesVector, DecimalVector, TimestampVector). It exposes
// just enough of the shared null-mask/repeating state for the vectorized
// driver (orc/convert) to walk any vector without knowing its element type.
type Vector interface {
	// Len reports the logical number of rows currently held.
	Len() int

	// NoNulls reports whether every logical row is known non-null. When
	// true, IsNull must not be consulted.
	NoNulls() bool
	SetNoNulls(v bool)

	// IsNull reports whether row i is null. Only meaningful when
	// NoNulls() is false.
	IsNull(i int) bool
	SetNull(i int, null bool)

	// IsRepeating reports whether only row 0 is authoritative for all
	// Len() logical rows (a compressed constant-valued run).
	IsRepeating() bool
	SetRepeating(v bool)

	// Reset sets Len() to n, clears the repeating flag, sets NoNulls to
	// true, and zeroes the null mask prefix up to n, preparing the vector
	// for the next batch. Stored values are left in place, except that
	// BytesVector drops its row slices; callers overwrite values through
	// Set as they go.
	Reset(n int)

	// Resize grows the vector's backing storage (values and null mask)
	// to at least capacity n. When the values slice has to grow it is
	// reallocated at length n, so Len() can change; Reset(n) is what
	// sets Len() for a batch.
	Resize(n int)
}

// base implements the null-mask and repeating bookkeeping shared by every
// concrete vector type. Embed it and get Vector's null/repeating methods
// for free; each concrete type still implements Len/Reset/Resize itself
// since those touch the type's own value slice.
type base struct {
	noNulls     bool
	isNull      []bool
	isRepeating bool
}

func (b *base) NoNulls() bool        { return b.noNulls }
func (b *base) SetNoNulls(v bool)    { b.noNulls = v }
func (b *base) IsRepeating() bool    { return b.isRepeating }
func (b *base) SetRepeating(v bool)  { b.isRepeating = v }

func (b *base) IsNull(i int) bool {
	if b.noNulls {
		return false
	}
	return b.isNull[i]
}

func (b *base) SetNull(i int, null bool) {
	if null && b.noNulls {
		b.noNulls = false
	}
	if cap(b.isNull) <= i {
		b.growMask(i + 1)
	}
	if len(b.isNull) <= i {
		b.isNull = b.isNull[:i+1]
	}
	b.isNull[i] = null
}

func (b *base) growMask(n int) {
	grown := make([]bool, n)
	copy(grown, b.isNull)
	b.isNull = grown
}

func (b *base) resetMask(n int) {
	b.noNulls = true
	b.isRepeating = false
	if cap(b.isNull) < n {
		b.growMask(n)
	}
	b.isNull = b.isNull[:n]
	for i := range b.isNull {
		b.isNull[i] = false
	}
}

func (b *base) ensureMaskCap(n int) {
	if cap(b.isNull) < n {
		b.growMask(n)
	}
	if len(b.isNull) < n {
		b.isNull = b.isNull[:n]
	}
}
