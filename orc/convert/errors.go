package convert

import "github.com/pkg/errors"

// UnsupportedConversion is returned when a (file_type, reader_type)
// category pair has no conversion reader, including either side being a
// complex type. Static and raised only at construction time.
var UnsupportedConversion = errors.New("convert: unsupported conversion")

// NoConversionNeeded is returned when file_type and reader_type are
// already identical (same category, and for DECIMAL/CHAR/VARCHAR the same
// parameters): the caller should not have invoked the layer at all.
var NoConversionNeeded = errors.New("convert: no conversion needed")
