package fieldtype

import "fmt"

// FieldFormat identifies how a field's bytes should be interpreted for
// display. It is orthogonal to FieldEncoding, except for Struct fields: there
// the wire format byte is repurposed to carry the sub-field count (1-127)
// instead of a display format, see StructFieldCount.
type FieldFormat uint8

// Named FieldFormat values (bits 0-6 of the wire format byte).
const (
	// Default means "no format byte was present"; formatters choose a
	// sensible default per FieldEncoding (unsigned decimal for integers,
	// the encoding's natural character set for strings).
	Default FieldFormat = iota
	UnsignedInt
	SignedInt
	HexInt
	Errno
	Pid
	Time
	Boolean
	Float
	HexBytes
	String8
	StringUtf
	StringUtfBom
	StringXml
	StringJson
	Uuid
	Port
	IPv4
	IPv6
)

const (
	// FormatValueMask isolates the base format (or struct sub-field count)
	// from a raw wire format byte.
	FormatValueMask = 0x7F

	// FormatChainFlag indicates a u16 field tag, in the event's byte order,
	// follows the format byte in the metadata stream.
	FormatChainFlag = 0x80
)

// RawFormat splits a raw metadata wire format byte into its base FieldFormat
// (or, for Struct fields, sub-field count) and whether ChainFlag is set.
func RawFormat(wire uint8) (base FieldFormat, chain bool) {
	return FieldFormat(wire & FormatValueMask), wire&FormatChainFlag != 0
}

// StructFieldCount reinterprets f as a Struct's immediate sub-field count.
// Valid range is 1-127; 0 is malformed (spec.md §4.4 error conditions).
func (f FieldFormat) StructFieldCount() uint8 {
	return uint8(f)
}

func (f FieldFormat) String() string {
	switch f {
	case Default:
		return "Default"
	case UnsignedInt:
		return "UnsignedInt"
	case SignedInt:
		return "SignedInt"
	case HexInt:
		return "HexInt"
	case Errno:
		return "Errno"
	case Pid:
		return "Pid"
	case Time:
		return "Time"
	case Boolean:
		return "Boolean"
	case Float:
		return "Float"
	case HexBytes:
		return "HexBytes"
	case String8:
		return "String8"
	case StringUtf:
		return "StringUtf"
	case StringUtfBom:
		return "StringUtfBom"
	case StringXml:
		return "StringXml"
	case StringJson:
		return "StringJson"
	case Uuid:
		return "Uuid"
	case Port:
		return "Port"
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return fmt.Sprintf("FieldFormat(%d)", uint8(f))
	}
}
