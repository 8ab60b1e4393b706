// Package config holds the construction-time options the conversion
// layer is parameterized over.
package config

// Context carries the options a conversion reader factory needs at
// construction time.
type Context struct {
	// BatchSize is the row capacity CreateConvertReaderForColumn
	// pre-allocates the conversion reader's scratch vector with. It does
	// not limit the batchSize passed to NextBatch.
	BatchSize int

	// UseUTC is carried for decoders an enclosing file reader builds. The
	// conversion kernels in orc/convert do not read it; they always work
	// in UTC.
	UseUTC bool

	// PreferDecimal64 selects the packed int64-mantissa decimal vector
	// layout when a DECIMAL type's precision allows it (<=18).
	PreferDecimal64 bool
}

// DefaultContext returns the options a standalone conversion reader should
// use absent an enclosing file reader's configuration.
func DefaultContext() *Context {
	return &Context{
		BatchSize:       1024,
		UseUTC:          true,
		PreferDecimal64: true,
	}
}
