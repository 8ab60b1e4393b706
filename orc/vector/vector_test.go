package vector

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/orcstream/orcgo/orc/api"
)

func TestLongVectorNullMask(test *testing.T) {
	v := NewLongVector(4)
	assert.True(test, v.NoNulls())

	v.Set(0, 10)
	v.SetNull(1, true)
	v.Set(2, 30)
	v.Set(3, 40)

	assert.False(test, v.NoNulls())
	assert.True(test, v.IsNull(1))
	assert.False(test, v.IsNull(0))
	assert.Equal(test, int64(10), v.Values[0])
}

func TestLongVectorRepeating(test *testing.T) {
	v := NewLongVector(5)
	v.SetRepeating(true)
	v.Set(0, 7)

	assert.True(test, v.IsRepeating())
	assert.Equal(test, 5, v.Len())
}

func TestLongVectorReset(test *testing.T) {
	v := NewLongVector(3)
	v.SetNull(0, true)
	v.SetRepeating(true)

	v.Reset(3)

	assert.True(test, v.NoNulls())
	assert.False(test, v.IsRepeating())
	assert.False(test, v.IsNull(0))
}

func TestDoubleVectorBasic(test *testing.T) {
	v := NewDoubleVector(2)
	v.Set(0, 1.5)
	v.SetNull(1, true)

	assert.Equal(test, 1.5, v.Values[0])
	assert.True(test, v.IsNull(1))
}

func TestBytesVectorBasic(test *testing.T) {
	v := NewBytesVector(2)
	v.SetString(0, "hello")
	v.SetNull(1, true)

	assert.Equal(test, []byte("hello"), v.Values[0])
	assert.True(test, v.IsNull(1))
	assert.False(test, v.NoNulls())
}

func TestTimestampVectorRoundTrip(test *testing.T) {
	v := NewTimestampVector(2)
	ts := api.TimestampValue{Seconds: 1234567, Nanos: 999}
	v.Set(0, ts)

	assert.Equal(test, ts, v.Get(0))
	assert.False(test, v.IsNull(0))
}

func TestDecimal64VectorFitsPrecision(test *testing.T) {
	v := NewDecimalVector(3, 5, 2)
	d64, ok := v.(*Decimal64Vector)
	assert.True(test, ok)
	assert.Equal(test, 5, d64.Precision())
	assert.Equal(test, 2, d64.Scale())

	ok1 := v.Set(0, decimal.RequireFromString("123.45"))
	assert.True(test, ok1)
	assert.Equal(test, "123.45", v.Get(0).StringFixed(2))

	ok2 := v.Set(1, decimal.RequireFromString("9999.99"))
	assert.False(test, ok2, "6-digit coefficient must not fit precision 5")
	assert.True(test, v.IsNull(1))
}

func TestDecimal64VectorRoundsToScale(test *testing.T) {
	v := NewDecimalVector(1, 5, 2)
	ok := v.Set(0, decimal.RequireFromString("1.005"))
	assert.True(test, ok)
	assert.Equal(test, "1.01", v.Get(0).StringFixed(2))
}

func TestDecimal128VectorUsedForHighPrecision(test *testing.T) {
	v := NewDecimalVector(1, 30, 10)
	_, isPacked := v.(*Decimal64Vector)
	assert.False(test, isPacked)
	_, is128 := v.(*Decimal128Vector)
	assert.True(test, is128)

	ok := v.Set(0, decimal.RequireFromString("12345678901234567890.1234567890"))
	assert.True(test, ok)
}
