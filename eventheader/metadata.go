package eventheader

import (
	"bytes"

	"github.com/arloliu/eventheader/endian"
	"github.com/arloliu/eventheader/errs"
	"github.com/arloliu/eventheader/fieldtype"
)

// FieldDescriptor is one parsed field entry from the metadata extension's
// typed-tag stream: a name plus its encoding, array-ness, format, and tag.
//
// FieldDescriptor borrows Name from the metadata buffer; it is valid only as
// long as that buffer is.
type FieldDescriptor struct {
	Name        []byte
	Encoding    fieldtype.FieldEncoding
	ArrayFlags  uint8 // 0, fieldtype.CArrayFlag, or fieldtype.VArrayFlag
	Format      fieldtype.FieldFormat
	Tag         uint16
	CArrayCount uint16 // valid iff ArrayFlags == fieldtype.CArrayFlag
}

// MetadataScanner walks a Metadata extension payload's NUL-separated,
// typed-tag field stream. It is purely positional: it does not interpret
// nesting. The decode package's Enumerator handles Struct descent by pushing
// its own stack frames and reusing this scanner for each frame's fields.
type MetadataScanner struct {
	data []byte
	r    endian.ByteReader
}

// NewMetadataScanner constructs a scanner over a Metadata extension payload.
func NewMetadataScanner(data []byte, r endian.ByteReader) MetadataScanner {
	return MetadataScanner{data: data, r: r}
}

// readName scans data starting at cursor for a NUL terminator and returns the
// bytes before it (possibly empty) and the cursor position just past the NUL.
func (s MetadataScanner) readName(cursor int) (name []byte, newCursor int, err error) {
	if cursor > len(s.data) {
		return nil, 0, errs.ErrInvalidData
	}

	rest := s.data[cursor:]

	idx := bytes.IndexByte(rest, 0x00)
	if idx < 0 {
		return nil, 0, errs.ErrInvalidData
	}

	return rest[:idx], cursor + idx + 1, nil
}

// EventName reads the NUL-terminated event name at the start of the Metadata
// payload (cursor 0) and returns it plus the cursor just past it, from which
// the first field descriptor (if any) can be read.
func (s MetadataScanner) EventName() (name []byte, fieldsCursor int, err error) {
	return s.readName(0)
}

// NextField reads one field descriptor starting at cursor.
//
// If the field name is empty, this is the metadata list's terminator: end is
// true and the caller must not request another field from this cursor
// position (there is no encoding byte to read for the terminator itself).
//
// Returns errs.ErrInvalidData for any out-of-bounds read, or for an Invalid
// (zero) encoding byte.
func (s MetadataScanner) NextField(cursor int) (desc FieldDescriptor, newCursor int, end bool, err error) {
	name, cursor, err := s.readName(cursor)
	if err != nil {
		return FieldDescriptor{}, 0, false, err
	}

	if len(name) == 0 {
		return FieldDescriptor{}, cursor, true, nil
	}

	if cursor >= len(s.data) {
		return FieldDescriptor{}, 0, false, errs.ErrInvalidData
	}

	encodingByte := s.data[cursor]
	cursor++

	base, arrayFlags, chainE := fieldtype.RawEncoding(encodingByte)
	if base == fieldtype.Invalid {
		return FieldDescriptor{}, 0, false, errs.ErrInvalidData
	}

	format := fieldtype.Default
	chainF := false

	if chainE {
		if cursor >= len(s.data) {
			return FieldDescriptor{}, 0, false, errs.ErrInvalidData
		}

		format, chainF = fieldtype.RawFormat(s.data[cursor])
		cursor++
	}

	var tag uint16

	if chainF {
		if cursor+2 > len(s.data) {
			return FieldDescriptor{}, 0, false, errs.ErrInvalidData
		}

		tag = s.r.ReadU16At(s.data, cursor)
		cursor += 2
	}

	var count uint16

	if fieldtype.IsCArray(arrayFlags) {
		if cursor+2 > len(s.data) {
			return FieldDescriptor{}, 0, false, errs.ErrInvalidData
		}

		count = s.r.ReadU16At(s.data, cursor)
		cursor += 2
	}

	return FieldDescriptor{
		Name:        name,
		Encoding:    base,
		ArrayFlags:  arrayFlags,
		Format:      format,
		Tag:         tag,
		CArrayCount: count,
	}, cursor, false, nil
}
