package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcstream/orcgo/orc/api"
	"github.com/orcstream/orcgo/orc/column"
)

// mustMemoryReaderFixture builds a zero-row MemoryReader of fileType's
// representation, enough to satisfy CreateConvertReader's construction-
// time checks in tests that never call NextBatch.
func mustMemoryReaderFixture(test *testing.T, fileType *api.TypeDescription) column.Reader {
	reader, err := column.NewMemoryReader(fileType, NewOutputVector(fileType, 0))
	assert.NoError(test, err)
	return reader
}

func TestCanConvertRejectsComplexTypes(test *testing.T) {
	assert.False(test, CanConvert(api.NewType(api.Struct), api.NewType(api.Int)))
	assert.False(test, CanConvert(api.NewType(api.Int), api.NewType(api.List)))
}

func TestCanConvertNumericToBinaryOrDateDisallowed(test *testing.T) {
	numeric := []api.Category{
		api.Boolean, api.Byte, api.Short, api.Int, api.Long,
		api.Float, api.Double, api.Decimal,
	}
	for _, c := range numeric {
		ft := categoryType(c)
		assert.False(test, CanConvert(ft, api.NewType(api.Binary)), "%s -> BINARY", c)
		assert.False(test, CanConvert(ft, api.NewType(api.Date)), "%s -> DATE", c)
		assert.True(test, CanConvert(ft, api.NewType(api.String)), "%s -> STRING", c)
	}
}

func TestCanConvertTimestampDisallowsBinary(test *testing.T) {
	ft := api.NewType(api.Timestamp)
	assert.False(test, CanConvert(ft, api.NewType(api.Binary)))
	assert.True(test, CanConvert(ft, api.NewType(api.String)))
	assert.True(test, CanConvert(ft, api.NewType(api.Date)))
	assert.True(test, CanConvert(ft, api.NewType(api.Long)))
}

func TestCanConvertDateOnlyAllowsStringTimestampDate(test *testing.T) {
	ft := api.NewType(api.Date)
	assert.True(test, CanConvert(ft, api.NewType(api.String)))
	assert.True(test, CanConvert(ft, api.NewType(api.Char)))
	assert.True(test, CanConvert(ft, api.NewType(api.Varchar)))
	assert.True(test, CanConvert(ft, api.NewType(api.Timestamp)))
	assert.True(test, CanConvert(ft, api.NewType(api.Date)))
	assert.False(test, CanConvert(ft, api.NewType(api.Long)))
	assert.False(test, CanConvert(ft, api.NewType(api.Binary)))
}

func TestCanConvertBinaryOnlyAllowsStringGroupAndBinary(test *testing.T) {
	ft := api.NewType(api.Binary)
	assert.True(test, CanConvert(ft, api.NewType(api.String)))
	assert.True(test, CanConvert(ft, api.NewType(api.Binary)))
	assert.False(test, CanConvert(ft, api.NewType(api.Long)))
	assert.False(test, CanConvert(ft, api.NewType(api.Timestamp)))
}

func TestCanConvertStringGroupAllowsEverythingPrimitive(test *testing.T) {
	for _, ft := range []*api.TypeDescription{api.NewType(api.String), api.NewType(api.Char), api.NewType(api.Varchar)} {
		assert.True(test, CanConvert(ft, api.NewType(api.Long)))
		assert.True(test, CanConvert(ft, api.NewType(api.Double)))
		assert.True(test, CanConvert(ft, api.NewType(api.Decimal)))
		assert.True(test, CanConvert(ft, api.NewType(api.Binary)))
		assert.True(test, CanConvert(ft, api.NewType(api.Timestamp)))
		assert.True(test, CanConvert(ft, api.NewType(api.Date)))
	}
}

func TestCreateConvertReaderRejectsSelfConversion(test *testing.T) {
	fileType := api.NewType(api.Int)
	_, err := CreateConvertReader(fileType, fileType, nil)
	assert.True(test, errors.Is(err, NoConversionNeeded))
}

func TestCreateConvertReaderRejectsSelfConversionSameDecimalParams(test *testing.T) {
	fileType := api.NewDecimalType(10, 2)
	readerType := api.NewDecimalType(10, 2)
	_, err := CreateConvertReader(fileType, readerType, nil)
	assert.True(test, errors.Is(err, NoConversionNeeded))
}

func TestCreateConvertReaderAllowsDecimalRescale(test *testing.T) {
	fileType := api.NewDecimalType(10, 2)
	readerType := api.NewDecimalType(10, 4)
	_, err := CreateConvertReader(fileType, readerType, mustMemoryReaderFixture(test, fileType))
	assert.NoError(test, err)
}

func TestCreateConvertReaderRejectsComplexTypes(test *testing.T) {
	_, err := CreateConvertReader(api.NewType(api.Struct), api.NewType(api.Int), nil)
	assert.True(test, errors.Is(err, UnsupportedConversion))
}

func TestCreateConvertReaderRejectsUnsupportedPair(test *testing.T) {
	_, err := CreateConvertReader(api.NewType(api.Date), api.NewType(api.Long), nil)
	assert.True(test, errors.Is(err, UnsupportedConversion))
}

func categoryType(c api.Category) *api.TypeDescription {
	if c == api.Decimal {
		return api.NewDecimalType(10, 2)
	}
	return api.NewType(c)
}
