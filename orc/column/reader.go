package column

import (
	"github.com/pkg/errors"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

// MemoryReader implements Reader over a fully materialized in-memory
// vector, standing in for a stream-backed decoder.
type MemoryReader struct {
	schema *api.TypeDescription
	source vector.Vector
	pos    int
}

func (r *MemoryReader) NextBatch(output vector.Vector, batchSize int) error {
	if batchSize <= 0 {
		return errors.Errorf("column: batch size must be positive, got %d", batchSize)
	}

	remaining := r.source.Len() - r.pos
	if remaining <= 0 {
		return fillVector(output, r.schema, nil, 0, 0)
	}

	n := batchSize
	if remaining < n {
		n = remaining
	}

	if err := fillVector(output, r.schema, r.source, r.pos, n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// CheckEncoding is a no-op: MemoryReader has no stream encoding to check.
func (r *MemoryReader) CheckEncoding(encoding ColumnEncoding) error { return nil }

// StartStripe is a no-op: MemoryReader serves its whole preloaded vector
// regardless of stripe boundaries.
func (r *MemoryReader) StartStripe(stripe *StripeStreams) error { return nil }

func (r *MemoryReader) Seek(rowNumber uint64) error {
	if int(rowNumber) > r.source.Len() {
		return errors.Errorf("column: seek past end of column (%d rows)", r.source.Len())
	}
	r.pos = int(rowNumber)
	return nil
}

func (r *MemoryReader) SkipRows(n uint64) error {
	return r.Seek(uint64(r.pos) + n)
}

func (r *MemoryReader) Close() {}
