package table

import (
	"strconv"
	"strings"
)

type kind uint8

const (
	kindNull kind = iota
	kindString
	kindNumber
)

// Value is a single nullable table cell: null, string, or number.
type Value struct {
	kind kind
	str  string
	num  float64
}

// Null returns the null cell.
func Null() Value {
	return Value{}
}

// Str returns a string cell.
func Str(s string) Value {
	return Value{kind: kindString, str: s}
}

// Num returns a numeric cell.
func Num(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// IsNull reports whether the cell is null.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// Text returns the cell's string content. Numbers and nulls report ok=false.
func (v Value) Text() (string, bool) {
	if v.kind != kindString {
		return "", false
	}
	return v.str, true
}

// Float coerces the cell to a float. String cells are parsed; unparsable
// strings and nulls report ok=false rather than failing.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case kindNumber:
		return v.num, true
	case kindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Render formats the cell for delimited output. Nulls render empty and
// numbers render with the fewest digits that round-trip (93.5, not 93.50).
func (v Value) Render() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}
