package fieldtype

import "github.com/arloliu/eventheader/endian"

// ItemType is the fully-decoded description of one field at the enumerator's
// current cursor.
//
// ItemType is a plain value; constructing one never allocates, and copying it
// is cheap (it holds no slice, only a ByteReader value and small scalars).
type ItemType struct {
	Encoding     FieldEncoding
	Format       FieldFormat
	FieldTag     uint16
	typeSize     uint16
	elementCount uint16
	isArray      bool
	reader       endian.ByteReader
}

// NewItemType constructs an ItemType, deriving TypeSize from encoding.
//
// isArray must be true iff encoding's wire byte carried CArrayFlag or
// VArrayFlag; elementCount is the caller's best-known count: for CArray it is
// the metadata-declared count, for VArray it is the just-read payload count
// (may be 0), and for a plain scalar or Struct it must be 1 with isArray
// false.
func NewItemType(encoding FieldEncoding, format FieldFormat, tag uint16, isArray bool, elementCount int, reader endian.ByteReader) ItemType {
	size := encoding.TypeSize()

	return ItemType{
		Encoding:     encoding,
		Format:       format,
		FieldTag:     tag,
		typeSize:     uint16(size),
		elementCount: uint16(elementCount),
		isArray:      isArray,
		reader:       reader,
	}
}

// TypeSize is the per-element byte width: fixed for Value8..Value128, 0 for
// variable-length encodings and for Struct.
func (t ItemType) TypeSize() int { return int(t.typeSize) }

// ElementCount is the number of elements: 1 for a non-array field, the array
// length otherwise (may be 0 for an empty VArray).
func (t ItemType) ElementCount() int { return int(t.elementCount) }

// Reader is the byte-order reader in effect for this field's payload bytes.
func (t ItemType) Reader() endian.ByteReader { return t.reader }

// IsArrayOrElement reports whether encoding carries either array flag bit,
// i.e. whether this ItemType describes an array-begin/array-end pair or one
// element within such an array. It does not distinguish the two; callers use
// the enumerator's State for that.
func (t ItemType) IsArrayOrElement() bool {
	return t.isArray
}

// StructFieldCount reinterprets Format as the immediate sub-field count of a
// Struct field. Only meaningful when Encoding == Struct.
func (t ItemType) StructFieldCount() uint8 {
	return t.Format.StructFieldCount()
}

// ItemValue is a borrowed bytes slice plus the ItemType describing how to
// interpret it.
//
// ItemValue never owns its Bytes: the slice aliases the caller's event
// payload buffer for the entire lifetime of the enumeration that produced it.
// The caller must not mutate that buffer, and must not retain an ItemValue
// past the next MoveNext call.
type ItemValue struct {
	Bytes []byte
	Type  ItemType
}

// NewItemValue constructs an ItemValue. For Struct fields bytes must be
// empty; for fixed-width scalars/arrays len(bytes) must equal
// TypeSize()*ElementCount().
func NewItemValue(bytes []byte, typ ItemType) ItemValue {
	return ItemValue{Bytes: bytes, Type: typ}
}
