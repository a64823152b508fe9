package fieldtype

import "fmt"

// FieldEncoding identifies the wire representation of a scalar or aggregate
// field. The raw wire byte also carries the CArray/VArray/ChainFlag bits;
// those are stripped before a FieldEncoding value is constructed, so every
// FieldEncoding value here is in the range 0-31.
type FieldEncoding uint8

// Base encoding values (bits 0-4 of the wire byte, after flags are stripped).
const (
	Invalid FieldEncoding = iota
	Value8
	Value16
	Value32
	Value64
	Value128
	ZStringChar8
	ZStringChar16
	ZStringChar32
	StringLength16Char8
	StringLength16Char16
	StringLength16Char32
	BinaryLength16Char8
	Struct
)

// Flag bits carried by the wire byte alongside the base FieldEncoding.
const (
	// EncodingValueMask isolates the base encoding from a raw wire byte.
	EncodingValueMask = 0x1F

	// CArrayFlag marks a constant-length array; the element count is stored
	// inline in the metadata as a u16 immediately after the format/tag bytes.
	CArrayFlag = 0x20

	// VArrayFlag marks a variable-length array; the element count is read as
	// a u16 from the payload at the point the field is reached.
	VArrayFlag = 0x40

	// EncodingChainFlag indicates a FieldFormat byte follows this encoding
	// byte in the metadata stream.
	EncodingChainFlag = 0x80

	// arrayFlagMask isolates whichever array flag (if any) is set.
	arrayFlagMask = CArrayFlag | VArrayFlag
)

// RawEncoding splits a raw metadata wire byte into its base FieldEncoding, the
// array-flag bits (0, CArrayFlag, or VArrayFlag), and whether ChainFlag is set.
func RawEncoding(wire uint8) (base FieldEncoding, arrayFlags uint8, chain bool) {
	base = FieldEncoding(wire & EncodingValueMask)
	arrayFlags = wire & arrayFlagMask
	chain = wire&EncodingChainFlag != 0

	return base, arrayFlags, chain
}

// IsCArray reports whether arrayFlags (as returned by RawEncoding) designates
// a constant-length array.
func IsCArray(arrayFlags uint8) bool { return arrayFlags == CArrayFlag }

// IsVArray reports whether arrayFlags (as returned by RawEncoding) designates
// a variable-length array.
func IsVArray(arrayFlags uint8) bool { return arrayFlags == VArrayFlag }

// TypeSize returns the fixed per-element byte width of e, or 0 for
// variable-length encodings and Struct.
func (e FieldEncoding) TypeSize() int {
	switch e {
	case Value8:
		return 1
	case Value16:
		return 2
	case Value32:
		return 4
	case Value64:
		return 8
	case Value128:
		return 16
	default:
		return 0
	}
}

// IsVariableLength reports whether e's element length must be scanned or
// read from a length prefix rather than derived from TypeSize.
func (e FieldEncoding) IsVariableLength() bool {
	switch e {
	case ZStringChar8, ZStringChar16, ZStringChar32,
		StringLength16Char8, StringLength16Char16, StringLength16Char32,
		BinaryLength16Char8:
		return true
	default:
		return false
	}
}

// Valid reports whether e is a known, non-Invalid base encoding.
func (e FieldEncoding) Valid() bool {
	return e >= Value8 && e <= Struct
}

func (e FieldEncoding) String() string {
	switch e {
	case Invalid:
		return "Invalid"
	case Value8:
		return "Value8"
	case Value16:
		return "Value16"
	case Value32:
		return "Value32"
	case Value64:
		return "Value64"
	case Value128:
		return "Value128"
	case ZStringChar8:
		return "ZStringChar8"
	case ZStringChar16:
		return "ZStringChar16"
	case ZStringChar32:
		return "ZStringChar32"
	case StringLength16Char8:
		return "StringLength16Char8"
	case StringLength16Char16:
		return "StringLength16Char16"
	case StringLength16Char32:
		return "StringLength16Char32"
	case BinaryLength16Char8:
		return "BinaryLength16Char8"
	case Struct:
		return "Struct"
	default:
		return fmt.Sprintf("FieldEncoding(%d)", uint8(e))
	}
}
