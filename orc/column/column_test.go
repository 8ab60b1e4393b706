package column

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

func TestMemoryReaderBatchesAndNulls(test *testing.T) {
	source := vector.NewLongVector(5)
	for i := 0; i < 5; i++ {
		source.Set(i, int64(i*10))
	}
	source.SetNull(2, true)

	schema := api.NewType(api.Int)
	reader, err := NewMemoryReader(schema, source)
	assert.NoError(test, err)

	out := vector.NewLongVector(3)
	assert.NoError(test, reader.NextBatch(out, 3))
	assert.Equal(test, 3, out.Len())
	assert.True(test, out.IsNull(2))
	assert.Equal(test, int64(10), out.Values[1])

	assert.NoError(test, reader.NextBatch(out, 3))
	assert.Equal(test, 2, out.Len())

	assert.NoError(test, reader.NextBatch(out, 3))
	assert.Equal(test, 0, out.Len())
}

func TestMemoryReaderSeekAndSkip(test *testing.T) {
	source := vector.NewLongVector(4)
	for i := 0; i < 4; i++ {
		source.Set(i, int64(i))
	}

	schema := api.NewType(api.Long)
	reader, err := NewMemoryReader(schema, source)
	assert.NoError(test, err)

	assert.NoError(test, reader.Seek(2))
	out := vector.NewLongVector(10)
	assert.NoError(test, reader.NextBatch(out, 10))
	assert.Equal(test, []int64{2, 3}, out.Values)

	assert.NoError(test, reader.Seek(0))
	assert.NoError(test, reader.SkipRows(3))
	assert.NoError(test, reader.NextBatch(out, 10))
	assert.Equal(test, 1, out.Len())
}

func TestNewMemoryReaderRejectsComplexTypes(test *testing.T) {
	_, err := NewMemoryReader(api.NewType(api.Struct), nil)
	assert.Error(test, err)
}
