package tracefs

import (
	"strings"

	"github.com/arloliu/eventheader/fieldtype"
)

// typeMapping is one entry of the base C-type-expression to
// FieldEncoding+FieldFormat lookup table, checked in order (so longer /
// more specific tokens like "unsigned long long" must precede "long").
type typeMapping struct {
	token    string
	encoding fieldtype.FieldEncoding
	format   fieldtype.FieldFormat
}

// baseTypeTable covers the C type spellings the kernel's tracefs format
// exporter and the abbreviated u8/s16/etc. forms spec.md names actually use.
// Checked in table order via matchBaseType.
var baseTypeTable = []typeMapping{
	{"unsigned long long", fieldtype.Value64, fieldtype.UnsignedInt},
	{"unsigned long", fieldtype.Value64, fieldtype.UnsignedInt},
	{"unsigned short", fieldtype.Value16, fieldtype.UnsignedInt},
	{"unsigned char", fieldtype.Value8, fieldtype.UnsignedInt},
	{"unsigned int", fieldtype.Value32, fieldtype.UnsignedInt},
	{"long long", fieldtype.Value64, fieldtype.SignedInt},
	{"short", fieldtype.Value16, fieldtype.SignedInt},
	{"long", fieldtype.Value64, fieldtype.SignedInt},
	{"int", fieldtype.Value32, fieldtype.SignedInt},
	{"char", fieldtype.Value8, fieldtype.String8},
	{"pid_t", fieldtype.Value32, fieldtype.SignedInt},
	{"u8", fieldtype.Value8, fieldtype.UnsignedInt},
	{"u16", fieldtype.Value16, fieldtype.UnsignedInt},
	{"u32", fieldtype.Value32, fieldtype.UnsignedInt},
	{"u64", fieldtype.Value64, fieldtype.UnsignedInt},
	{"__u8", fieldtype.Value8, fieldtype.UnsignedInt},
	{"__u16", fieldtype.Value16, fieldtype.UnsignedInt},
	{"__u32", fieldtype.Value32, fieldtype.UnsignedInt},
	{"__u64", fieldtype.Value64, fieldtype.UnsignedInt},
	{"s8", fieldtype.Value8, fieldtype.SignedInt},
	{"s16", fieldtype.Value16, fieldtype.SignedInt},
	{"s32", fieldtype.Value32, fieldtype.SignedInt},
	{"s64", fieldtype.Value64, fieldtype.SignedInt},
}

// deducedType is typeexpr.go's verdict on a field's element encoding/format,
// array-ness, and element byte width, derived from its C type expression and
// corroborated by the field's declared size.
type deducedType struct {
	encoding     fieldtype.FieldEncoding
	format       fieldtype.FieldFormat
	isArray      bool
	dynamicLoc   bool // __data_loc / __rel_loc: offset+length packed into the field itself
	elementSize  int
	arrayCount   int // specified [N]; 0 for [] (count not known until size/elementSize)
}

// deduceType parses a tracefs field declaration's type expression (the text
// between "field:" and the field name, inclusive of any trailing "[N]"/"[]"
// that parseFieldLine re-attaches after splitDeclaration) and the field's
// declared size to
// produce a deducedType.
//
// fieldSize is the format file's size:N for this field (the whole field's
// byte length, not necessarily one element's).
func deduceType(typeExpr string, fieldSize int) deducedType {
	expr := strings.TrimSpace(typeExpr)

	isArray := false
	arrayCount := 0

	if idx := strings.IndexByte(expr, '['); idx >= 0 && strings.HasSuffix(expr, "]") {
		isArray = true
		inside := expr[idx+1 : len(expr)-1]
		expr = strings.TrimSpace(expr[:idx])

		if inside != "" {
			n := 0
			for _, c := range inside {
				if c < '0' || c > '9' {
					n = -1

					break
				}
				n = n*10 + int(c-'0')
			}

			if n > 0 {
				arrayCount = n
			}
		}
	}

	if strings.HasPrefix(expr, "__data_loc") || strings.HasPrefix(expr, "__rel_loc") {
		return deducedType{
			encoding:    fieldtype.BinaryLength16Char8,
			format:      fieldtype.HexBytes,
			isArray:     false,
			dynamicLoc:  true,
			elementSize: fieldSize,
		}
	}

	base := matchBaseType(expr)

	elemSize := base.encoding.TypeSize()
	if elemSize == 0 {
		elemSize = 1
	}

	if isArray && arrayCount == 0 && elemSize > 0 && fieldSize > 0 {
		arrayCount = fieldSize / elemSize
	}

	return deducedType{
		encoding:    base.encoding,
		format:      base.format,
		isArray:     isArray,
		elementSize: elemSize,
		arrayCount:  arrayCount,
	}
}

// matchBaseType returns the first baseTypeTable entry, in table order, whose
// token equals the (whitespace-trimmed, "const "-stripped) expr, else the
// first whose token appears anywhere in expr, defaulting to Value8/HexBytes
// (the tracefs convention for anything unrecognized: treat it as opaque bytes).
func matchBaseType(expr string) typeMapping {
	expr = strings.TrimSpace(expr)
	expr = strings.TrimPrefix(expr, "const ")
	expr = strings.TrimSpace(expr)

	for _, m := range baseTypeTable {
		if expr == m.token {
			return m
		}
	}

	// Fall back to a substring match for compound declarations the table
	// doesn't spell out verbatim (e.g. "char *", "volatile u32").
	for _, m := range baseTypeTable {
		if strings.Contains(expr, m.token) {
			return m
		}
	}

	return typeMapping{token: expr, encoding: fieldtype.Value8, format: fieldtype.HexBytes}
}
