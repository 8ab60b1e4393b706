// Package schema tracks the mapping between a reader's requested schema
// and the schema actually stored in a file, the input the conversion
// layer's factory (orc/convert) is driven from.
package schema

import (
	"github.com/pkg/errors"

	"github.com/orcstream/orcgo/orc/api"
)

// Evolution pairs a file column's on-disk type with the reader's
// requested type for the same logical column, by reader column id.
type Evolution struct {
	fileTypes   map[uint32]*api.TypeDescription
	readerTypes map[uint32]*api.TypeDescription
}

// NewEvolution builds an Evolution from parallel file/reader schema trees
// that have already been matched up by column id.
func NewEvolution(fileTypes, readerTypes map[uint32]*api.TypeDescription) (*Evolution, error) {
	for id, rt := range readerTypes {
		ft, ok := fileTypes[id]
		if !ok {
			return nil, errors.Errorf("schema: no file type for reader column %d", id)
		}
		if err := ft.Validate(); err != nil {
			return nil, errors.Wrapf(err, "schema: file column %d", id)
		}
		if err := rt.Validate(); err != nil {
			return nil, errors.Wrapf(err, "schema: reader column %d", id)
		}
	}
	return &Evolution{fileTypes: fileTypes, readerTypes: readerTypes}, nil
}

// FileType returns the on-disk type for reader column id.
func (e *Evolution) FileType(id uint32) (*api.TypeDescription, bool) {
	t, ok := e.fileTypes[id]
	return t, ok
}

// ReaderType returns the type the reader requested for column id.
func (e *Evolution) ReaderType(id uint32) (*api.TypeDescription, bool) {
	t, ok := e.readerTypes[id]
	return t, ok
}

// NeedsConversion reports whether reading column id requires a conversion
// reader at all, i.e. the file and reader types differ in a way that is
// not simply "no conversion needed" self-identity.
func (e *Evolution) NeedsConversion(id uint32) bool {
	ft, ok := e.FileType(id)
	if !ok {
		return false
	}
	rt, ok := e.ReaderType(id)
	if !ok {
		return false
	}
	if ft.Category != rt.Category {
		return true
	}
	switch ft.Category {
	case api.Decimal:
		return ft.Precision != rt.Precision || ft.Scale != rt.Scale
	case api.Char, api.Varchar:
		return ft.MaxLength != rt.MaxLength
	default:
		return false
	}
}
