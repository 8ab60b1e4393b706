// Package column defines the primitive decoder contract the conversion
// layer reads from. The conversion readers only ever reach a decoder
// through the Reader interface, so the stream/RLE decoding behind a real
// file reader stays fully decoupled; MemoryReader backs the same
// interface with a preloaded in-memory vector for tests and standalone
// use of the conversion layer.
package column

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/vector"
)

var logger = log.New()

// SetLogLevel adjusts this package's log verbosity.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// ColumnEncoding is the stream encoding kind a stripe footer declares
// for a column (DIRECT, DIRECT_V2, DICTIONARY, DICTIONARY_V2).
type ColumnEncoding int

const (
	EncodingDirect ColumnEncoding = iota
	EncodingDirectV2
	EncodingDictionary
	EncodingDictionaryV2
)

// StripeStreams carries the per-column streams of one stripe, keyed by
// stream name. The conversion layer never looks inside; it only forwards
// StartStripe to the decoder it wraps.
type StripeStreams struct {
	Streams map[string][]byte
}

// Reader is the primitive column decoder contract the conversion readers
// (orc/convert) are built against. A real file reader fills batches by
// decoding the column's stream; MemoryReader fills them from a preloaded
// vector for tests and for standalone use of the conversion layer.
type Reader interface {
	// NextBatch decodes up to batchSize further rows into output,
	// resizing it as needed. output must be the representation
	// orc/convert's NewOutputVector builds for the column's type (see
	// fillVector). output.Len()
	// shorter than batchSize after the call signals end of column. The
	// caller owns output and may reuse it across calls.
	NextBatch(output vector.Vector, batchSize int) error

	// CheckEncoding records the stream's column encoding ahead of the
	// next stripe's batches. Conversion readers forward this unchanged
	// to their wrapped source.
	CheckEncoding(encoding ColumnEncoding) error

	// StartStripe hands the reader the streams for a new stripe.
	// Conversion readers forward this unchanged to their wrapped source.
	StartStripe(streams *StripeStreams) error

	// Seek repositions the reader so the next NextBatch starts at
	// rowNumber.
	Seek(rowNumber uint64) error

	// SkipRows advances past n rows without materializing them.
	SkipRows(n uint64) error

	Close()
}

// NewMemoryReader builds a Reader that serves schema's declared category
// out of source, batchSize rows at a time. source must already be in the
// vector representation orc/convert's NewOutputVector returns for schema.
func NewMemoryReader(schema *api.TypeDescription, source vector.Vector) (Reader, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	if !schema.Category.IsPrimitive() {
		return nil, errors.Errorf("column: %s is not a primitive category", schema.Category)
	}
	logger.Debugf("memory reader created for column %d (%s)", schema.Id, schema)
	return &MemoryReader{schema: schema, source: source}, nil
}
