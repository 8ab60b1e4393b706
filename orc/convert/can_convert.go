package convert

import "github.com/orcstream/orcgo/orc/api"

// CanConvert mirrors CreateConvertReader's support matrix without
// allocating a reader.
func CanConvert(fileType, readerType *api.TypeDescription) bool {
	if !fileType.Category.IsPrimitive() || !readerType.Category.IsPrimitive() {
		return false
	}

	isNumeric := fileType.Category.IsAnyInteger() ||
		fileType.Category == api.Float || fileType.Category == api.Double ||
		fileType.Category == api.Decimal

	switch {
	case isNumeric:
		return readerType.Category != api.Binary && readerType.Category != api.Date

	case fileType.Category == api.Timestamp:
		return readerType.Category != api.Binary

	case fileType.Category == api.Date:
		switch readerType.Category {
		case api.String, api.Char, api.Varchar, api.Timestamp, api.Date:
			return true
		default:
			return false
		}

	case fileType.Category == api.Binary:
		switch readerType.Category {
		case api.String, api.Char, api.Varchar, api.Binary:
			return true
		default:
			return false
		}

	case fileType.Category.IsStringGroup():
		return true

	default:
		return false
	}
}
