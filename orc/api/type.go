// Package api holds the type system shared by the vector, column, schema
// and convert packages: the closed category enumeration and the
// TypeDescription tree that describes a column's logical type.
package api

import (
	"fmt"

	"github.com/pkg/errors"
)

// Category is the closed set of logical column kinds.
type Category uint8

const (
	Boolean Category = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	Decimal
	String
	Char
	Varchar
	Binary
	Date
	Timestamp
	Struct
	List
	Map
	Union
)

var categoryNames = [...]string{
	"boolean", "byte", "short", "int", "long", "float", "double", "decimal",
	"string", "char", "varchar", "binary", "date", "timestamp",
	"struct", "list", "map", "union",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// IsPrimitive reports whether c is outside the complex-type family
// (STRUCT, LIST, MAP, UNION). The conversion layer only ever operates on
// primitive categories; complex types are rejected at construction time.
func (c Category) IsPrimitive() bool {
	switch c {
	case Struct, List, Map, Union:
		return false
	default:
		return true
	}
}

// IsStringGroup reports whether c is one of the uniformly byte-backed
// string categories {STRING, CHAR, VARCHAR}.
func (c Category) IsStringGroup() bool {
	switch c {
	case String, Char, Varchar:
		return true
	default:
		return false
	}
}

// IsAnyInteger reports whether c is one of {BOOLEAN, BYTE, SHORT, INT, LONG},
// the family stored behind a single LongVector.
func (c Category) IsAnyInteger() bool {
	switch c {
	case Boolean, Byte, Short, Int, Long:
		return true
	default:
		return false
	}
}

// TypeDescription describes one column's logical type. CHAR/VARCHAR
// carry MaxLength, DECIMAL carries Precision/Scale.
type TypeDescription struct {
	Id       uint32
	Category Category

	// MaxLength applies to CHAR and VARCHAR only.
	MaxLength int

	// Precision and Scale apply to DECIMAL only: 1 <= Precision <= 38,
	// 0 <= Scale <= Precision.
	Precision int
	Scale     int

	ChildrenNames []string
	Children      []*TypeDescription
}

func (td *TypeDescription) String() string {
	switch td.Category {
	case Char, Varchar:
		return fmt.Sprintf("%s(%d)", td.Category, td.MaxLength)
	case Decimal:
		return fmt.Sprintf("decimal(%d,%d)", td.Precision, td.Scale)
	default:
		return td.Category.String()
	}
}

// Validate checks the CHAR/VARCHAR/DECIMAL parameter invariants.
func (td *TypeDescription) Validate() error {
	switch td.Category {
	case Char, Varchar:
		if td.MaxLength <= 0 {
			return errors.Errorf("%s type requires a positive max length, got %d", td.Category, td.MaxLength)
		}
	case Decimal:
		if td.Precision < 1 || td.Precision > 38 {
			return errors.Errorf("decimal precision must be in [1,38], got %d", td.Precision)
		}
		if td.Scale < 0 || td.Scale > td.Precision {
			return errors.Errorf("decimal scale must be in [0,%d], got %d", td.Precision, td.Scale)
		}
	}
	return nil
}

// NewDecimalType builds a DECIMAL TypeDescription with the given precision
// and scale.
func NewDecimalType(precision, scale int) *TypeDescription {
	return &TypeDescription{Category: Decimal, Precision: precision, Scale: scale}
}

// NewCharType builds a CHAR(maxLength) TypeDescription.
func NewCharType(maxLength int) *TypeDescription {
	return &TypeDescription{Category: Char, MaxLength: maxLength}
}

// NewVarcharType builds a VARCHAR(maxLength) TypeDescription.
func NewVarcharType(maxLength int) *TypeDescription {
	return &TypeDescription{Category: Varchar, MaxLength: maxLength}
}

// NewType builds a plain TypeDescription for categories that carry no
// extra parameters (everything but CHAR/VARCHAR/DECIMAL).
func NewType(category Category) *TypeDescription {
	return &TypeDescription{Category: category}
}
