package convert

import (
	"github.com/pkg/errors"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/column"
	"github.com/orcstream/orcgo/orc/vector"
)

// elementFunc converts row i of in into out. It is supplied by the
// specific (file, reader) category pair and may leave out's row null on
// a per-element failure (parse error, overflow, NaN source).
type elementFunc func(out, in vector.Vector, i int)

// Reader wraps one source-type decoder with a per-element conversion
// function and a lazily-allocated scratch input vector, implementing
// column.Reader itself so it can be bound into a file reader exactly
// where an unconverted decoder would go. CheckEncoding, StartStripe,
// Seek and SkipRows all forward unchanged to the wrapped decoder; only
// NextBatch does real work here, converting into the caller-supplied
// output vector.
type Reader struct {
	source   column.Reader
	fileType *api.TypeDescription
	target   *api.TypeDescription
	convert  elementFunc
	scratch  vector.Vector
}

// NewReader builds a conversion reader from an already-constructed
// decoder, the file column's on-disk type, the reader's requested type,
// and the per-element kernel. It is the building block the factory's
// sub-factories call into; most callers should go through
// CreateConvertReader instead.
func NewReader(source column.Reader, fileType, target *api.TypeDescription, convert elementFunc) *Reader {
	return &Reader{source: source, fileType: fileType, target: target, convert: convert}
}

// NextBatch fills output with up to batchSize converted rows, reusing a
// scratch input vector across calls instead of allocating one per batch.
// The caller owns output; the scratch vector never escapes the Reader.
func (r *Reader) NextBatch(output vector.Vector, batchSize int) error {
	if r.scratch == nil {
		r.scratch = NewOutputVector(r.fileType, batchSize)
	}
	if err := r.source.NextBatch(r.scratch, batchSize); err != nil {
		return errors.Wrap(err, "convert: reading source batch")
	}
	in := r.scratch
	ConvertVector(in, output, func(i int) { r.convert(output, in, i) })
	return nil
}

func (r *Reader) CheckEncoding(encoding column.ColumnEncoding) error {
	return r.source.CheckEncoding(encoding)
}

func (r *Reader) StartStripe(stripe *column.StripeStreams) error {
	return r.source.StartStripe(stripe)
}

func (r *Reader) Seek(rowNumber uint64) error { return r.source.Seek(rowNumber) }
func (r *Reader) SkipRows(n uint64) error     { return r.source.SkipRows(n) }
func (r *Reader) Close()                      { r.source.Close() }
