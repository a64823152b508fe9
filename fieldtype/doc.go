// Package fieldtype defines the low-level binary vocabulary shared by the
// eventheader metadata parser and the enumerator: the FieldEncoding and
// FieldFormat wire tags, and the ItemType/ItemValue carriers that describe one
// decoded field at the enumerator's current cursor.
//
// # Wire layout
//
// FieldEncoding is a single byte: the low 5 bits (0-31) name the base wire
// representation, bit 5 (0x20) is the CArray flag, bit 6 (0x40) is the VArray
// flag, and bit 7 (0x80) is the ChainFlag indicating a FieldFormat byte
// follows. At most one of CArray/VArray may be set.
//
// FieldFormat is also a single byte: the low 7 bits (0-127) name the display
// format (or, for Struct fields, the sub-field count), and bit 7 (0x80) is a
// second ChainFlag indicating a u16 field tag, in the event's byte order,
// follows.
//
// Both chain-flag bits are stripped before a FieldEncoding or FieldFormat
// value is stored in an ItemType; they must never leak into switch/dispatch
// tables or equality comparisons.
package fieldtype
