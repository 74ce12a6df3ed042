package geotrellis

import (
	"math"
	"strings"
)

// NoDataInt is the NoData value of integer cells.
const NoDataInt = math.MinInt32

// CellType is the storage encoding of a cell: bit width, signedness and
// whether NoData values are masked. Raw variants never mask.
type CellType string

const (
	BoolRaw    CellType = "boolraw"
	Int8Raw    CellType = "int8raw"
	Uint8Raw   CellType = "uint8raw"
	Int16Raw   CellType = "int16raw"
	Uint16Raw  CellType = "uint16raw"
	Int32Raw   CellType = "int32raw"
	Float32Raw CellType = "float32raw"
	Float64Raw CellType = "float64raw"
	Bool       CellType = "bool"
	Int8       CellType = "int8"
	Uint8      CellType = "uint8"
	Int16      CellType = "int16"
	Uint16     CellType = "uint16"
	Int32      CellType = "int32"
	Float32    CellType = "float32"
	Float64    CellType = "float64"
)

var CellTypes = newEnumeration("CellType",
	"Cell types.",
	Member{"BOOLRAW", string(BoolRaw), ""},
	Member{"INT8RAW", string(Int8Raw), ""},
	Member{"UINT8RAW", string(Uint8Raw), ""},
	Member{"INT16RAW", string(Int16Raw), ""},
	Member{"UINT16RAW", string(Uint16Raw), ""},
	Member{"INT32RAW", string(Int32Raw), ""},
	Member{"FLOAT32RAW", string(Float32Raw), ""},
	Member{"FLOAT64RAW", string(Float64Raw), ""},
	Member{"BOOL", string(Bool), ""},
	Member{"INT8", string(Int8), "NoData is -128."},
	Member{"UINT8", string(Uint8), "NoData is 0."},
	Member{"INT16", string(Int16), "NoData is -32768."},
	Member{"UINT16", string(Uint16), "NoData is 0."},
	Member{"INT32", string(Int32), "NoData is -2147483648."},
	Member{"FLOAT32", string(Float32), "NoData is NaN."},
	Member{"FLOAT64", string(Float64), "NoData is NaN."},
)

func ParseCellType(tag string) (CellType, error) {
	return parseTag[CellType](CellTypes, tag)
}

func (c CellType) Name() string                 { return nameOf(CellTypes, c) }
func (c CellType) Valid() bool                  { return CellTypes.HasTag(string(c)) }
func (c CellType) String() string               { return string(c) }
func (c CellType) MarshalText() ([]byte, error) { return marshalTag(CellTypes, c) }
func (c *CellType) UnmarshalText(text []byte) error {
	return unmarshalTag(CellTypes, c, text)
}

const rawSuffix = "raw"

func (c CellType) Raw() bool {
	return c.Valid() && strings.HasSuffix(string(c), rawSuffix)
}

// base strips the raw suffix.
func (c CellType) base() CellType {
	return CellType(strings.TrimSuffix(string(c), rawSuffix))
}

// RawVariant returns the variant of c that does not mask NoData.
func (c CellType) RawVariant() CellType {
	if !c.Valid() || c.Raw() {
		return c
	}
	return c + rawSuffix
}

// NoDataAware returns the variant of c that masks NoData.
func (c CellType) NoDataAware() CellType {
	if !c.Valid() {
		return c
	}
	return c.base()
}

// Bits returns the width of one cell. Bool cells are single bits.
func (c CellType) Bits() int {
	switch c.base() {
	case Bool:
		return 1
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Float32:
		return 32
	case Float64:
		return 64
	}
	return 0
}

func (c CellType) Signed() bool {
	switch c.base() {
	case Int8, Int16, Int32, Float32, Float64:
		return true
	}
	return false
}

func (c CellType) Floating() bool {
	b := c.base()
	return b == Float32 || b == Float64
}

// NoData returns the sentinel marking missing cells. Raw types and bool
// have none.
func (c CellType) NoData() (float64, bool) {
	if c.Raw() {
		return 0, false
	}
	switch c {
	case Int8:
		return math.MinInt8, true
	case Uint8, Uint16:
		return 0, true
	case Int16:
		return math.MinInt16, true
	case Int32:
		return NoDataInt, true
	case Float32, Float64:
		return math.NaN(), true
	}
	return 0, false
}

// IsNoData reports whether v is the NoData sentinel of c.
func (c CellType) IsNoData(v float64) bool {
	nd, ok := c.NoData()
	if !ok {
		return false
	}
	if math.IsNaN(nd) {
		return math.IsNaN(v)
	}
	return v == nd
}
