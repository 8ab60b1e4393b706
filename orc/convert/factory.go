package convert

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/column"
	"github.com/orcstream/orcgo/orc/config"
	"github.com/orcstream/orcgo/orc/schema"
)

var logger = log.New()

// SetLogLevel adjusts this package's log verbosity.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}

// CreateConvertReaderForColumn is the column-binding entry point: it
// resolves readerType's column through the schema-evolution map, builds
// the conversion reader around source, and applies the context's options
// (scratch vector pre-sized to the batch size, decimal layout
// preference). A nil opts falls back to config.DefaultContext.
func CreateConvertReaderForColumn(readerType *api.TypeDescription, evo *schema.Evolution, opts *config.Context, source column.Reader) (*Reader, error) {
	fileType, ok := evo.FileType(readerType.Id)
	if !ok {
		return nil, errors.Errorf("convert: no file type for reader column %d", readerType.Id)
	}
	r, err := CreateConvertReader(fileType, readerType, source)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = config.DefaultContext()
	}
	if opts.BatchSize > 0 {
		r.scratch = newOutputVectorOpts(fileType, opts.BatchSize, opts.PreferDecimal64)
	}
	return r, nil
}

// CreateConvertReader consults fileType and readerType (already resolved
// by the caller's schema-evolution lookup) and builds the conversion
// reader for that (file, reader) category pair, wrapping source. It fails
// with UnsupportedConversion if either side is complex or the category
// pair has no conversion reader, or with NoConversionNeeded if fileType
// and readerType already describe the same representation.
func CreateConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	if !fileType.Category.IsPrimitive() || !readerType.Category.IsPrimitive() {
		return nil, errors.Wrapf(UnsupportedConversion, "%s -> %s", fileType, readerType)
	}
	if isSelfConversion(fileType, readerType) {
		return nil, errors.Wrapf(NoConversionNeeded, "%s -> %s", fileType, readerType)
	}
	logger.Debugf("convert reader %s -> %s", fileType, readerType)

	switch {
	case fileType.Category.IsAnyInteger():
		return createAnyIntegerConvertReader(fileType, readerType, source)
	case fileType.Category == api.Float || fileType.Category == api.Double:
		return createDoubleConvertReader(fileType, readerType, source)
	case fileType.Category == api.Decimal:
		return createDecimalConvertReader(fileType, readerType, source)
	case fileType.Category.IsStringGroup():
		return createStringConvertReader(fileType, readerType, source)
	case fileType.Category == api.Timestamp:
		return createTimestampConvertReader(fileType, readerType, source)
	case fileType.Category == api.Date:
		return createDateConvertReader(fileType, readerType, source)
	case fileType.Category == api.Binary:
		return createBinaryConvertReader(fileType, readerType, source)
	default:
		return nil, errors.Wrapf(UnsupportedConversion, "%s -> %s", fileType, readerType)
	}
}

func isSelfConversion(fileType, readerType *api.TypeDescription) bool {
	if fileType.Category != readerType.Category {
		return false
	}
	switch fileType.Category {
	case api.Decimal:
		return fileType.Precision == readerType.Precision && fileType.Scale == readerType.Scale
	case api.Char, api.Varchar:
		return fileType.MaxLength == readerType.MaxLength
	default:
		return true
	}
}

func unsupported(fileType, readerType *api.TypeDescription) error {
	return errors.Wrapf(UnsupportedConversion, "%s -> %s", fileType, readerType)
}

// createAnyIntegerConvertReader dispatches conversions whose file type is
// BOOLEAN/BYTE/SHORT/INT/LONG.
func createAnyIntegerConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	switch readerType.Category {
	case api.Boolean, api.Byte, api.Short, api.Int, api.Long:
		return NewReader(source, fileType, readerType, anyIntegerFromAnyInteger(fileType.Category, readerType.Category)), nil
	case api.Float, api.Double:
		return NewReader(source, fileType, readerType, doubleFromInteger()), nil
	case api.Decimal:
		return NewReader(source, fileType, readerType, decimalFromInteger()), nil
	case api.String, api.Char, api.Varchar:
		return NewReader(source, fileType, readerType, stringFromInteger(fileType.Category, readerType.Category, readerType.MaxLength)), nil
	case api.Timestamp:
		return NewReader(source, fileType, readerType, timestampFromInteger()), nil
	default:
		return nil, unsupported(fileType, readerType)
	}
}

// createDoubleConvertReader dispatches conversions whose file type is
// FLOAT or DOUBLE.
func createDoubleConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	switch readerType.Category {
	case api.Boolean, api.Byte, api.Short, api.Int, api.Long:
		return NewReader(source, fileType, readerType, integerFromDouble(readerType.Category)), nil
	case api.Float:
		// fileType == FLOAT here is a self-conversion, already rejected by
		// CreateConvertReader; the only path that reaches this case is
		// narrowing a DOUBLE file column down to FLOAT.
		return NewReader(source, fileType, readerType, floatFromDouble()), nil
	case api.Double:
		return NewReader(source, fileType, readerType, doubleFromDouble()), nil
	case api.Decimal:
		return NewReader(source, fileType, readerType, decimalFromDouble()), nil
	case api.String, api.Char, api.Varchar:
		return NewReader(source, fileType, readerType, stringFromDouble(readerType.Category, readerType.MaxLength)), nil
	case api.Timestamp:
		return NewReader(source, fileType, readerType, timestampFromDouble()), nil
	default:
		return nil, unsupported(fileType, readerType)
	}
}

// createDecimalConvertReader dispatches conversions whose file type is
// DECIMAL.
func createDecimalConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	switch readerType.Category {
	case api.Boolean, api.Byte, api.Short, api.Int, api.Long:
		return NewReader(source, fileType, readerType, integerFromDecimal(readerType.Category)), nil
	case api.Float, api.Double:
		return NewReader(source, fileType, readerType, doubleFromDecimal()), nil
	case api.Decimal:
		return NewReader(source, fileType, readerType, decimalFromDecimal()), nil
	case api.String, api.Char, api.Varchar:
		return NewReader(source, fileType, readerType, stringFromDecimal(readerType.Category, readerType.MaxLength)), nil
	case api.Timestamp:
		return NewReader(source, fileType, readerType, timestampFromDecimal()), nil
	default:
		return nil, unsupported(fileType, readerType)
	}
}

// createStringConvertReader dispatches conversions whose file type is
// STRING, CHAR or VARCHAR; all three file sub-categories share the same
// dispatch.
func createStringConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	switch readerType.Category {
	case api.Boolean, api.Byte, api.Short, api.Int, api.Long:
		return NewReader(source, fileType, readerType, integerFromStringGroup(readerType.Category)), nil
	case api.Float, api.Double:
		return NewReader(source, fileType, readerType, doubleFromStringGroup()), nil
	case api.Decimal:
		return NewReader(source, fileType, readerType, decimalFromStringGroup()), nil
	case api.String, api.Char, api.Varchar:
		return NewReader(source, fileType, readerType, stringFromStringGroup(readerType.Category, readerType.MaxLength)), nil
	case api.Binary:
		return NewReader(source, fileType, readerType, binaryFromStringGroup()), nil
	case api.Timestamp:
		return NewReader(source, fileType, readerType, timestampFromStringGroup()), nil
	case api.Date:
		return NewReader(source, fileType, readerType, dateFromStringGroup()), nil
	default:
		return nil, unsupported(fileType, readerType)
	}
}

// createTimestampConvertReader dispatches conversions whose file type is
// TIMESTAMP.
func createTimestampConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	switch readerType.Category {
	case api.Boolean, api.Byte, api.Short, api.Int, api.Long:
		return NewReader(source, fileType, readerType, integerFromTimestamp(readerType.Category)), nil
	case api.Float, api.Double:
		return NewReader(source, fileType, readerType, doubleFromTimestamp()), nil
	case api.Decimal:
		return NewReader(source, fileType, readerType, decimalFromTimestamp()), nil
	case api.String, api.Char, api.Varchar:
		return NewReader(source, fileType, readerType, stringFromTimestamp(readerType.Category, readerType.MaxLength)), nil
	case api.Date:
		return NewReader(source, fileType, readerType, dateFromTimestamp()), nil
	default:
		return nil, unsupported(fileType, readerType)
	}
}

// createDateConvertReader dispatches conversions whose file type is
// DATE: only STRING/CHAR/VARCHAR and TIMESTAMP targets are supported
// (DATE->DATE is a self-conversion, rejected earlier).
func createDateConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	switch readerType.Category {
	case api.String, api.Char, api.Varchar:
		return NewReader(source, fileType, readerType, stringFromDate(readerType.Category, readerType.MaxLength)), nil
	case api.Timestamp:
		return NewReader(source, fileType, readerType, timestampFromDate()), nil
	default:
		return nil, unsupported(fileType, readerType)
	}
}

// createBinaryConvertReader dispatches conversions whose file type is
// BINARY: only STRING/CHAR/VARCHAR targets are supported (BINARY->BINARY
// is a self-conversion, rejected earlier).
func createBinaryConvertReader(fileType, readerType *api.TypeDescription, source column.Reader) (*Reader, error) {
	switch readerType.Category {
	case api.String, api.Char, api.Varchar:
		return NewReader(source, fileType, readerType, stringFromBinary(readerType.Category, readerType.MaxLength)), nil
	default:
		return nil, unsupported(fileType, readerType)
	}
}
