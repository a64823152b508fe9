package decode

import (
	"github.com/arloliu/eventheader/endian"
	"github.com/arloliu/eventheader/errs"
	"github.com/arloliu/eventheader/fieldtype"
)

// readFieldBytes computes one element's byte run for encoding starting at
// data[cursor:dataEnd] and returns it along with the cursor position just
// past it. It handles every FieldEncoding except Struct, which the
// enumerator never passes here (Struct fields carry no bytes of their own).
func readFieldBytes(data []byte, cursor, dataEnd int, encoding fieldtype.FieldEncoding, r endian.ByteReader) (bytes []byte, newCursor int, err error) {
	if size := encoding.TypeSize(); size > 0 {
		end := cursor + size
		if end > dataEnd {
			return nil, 0, errs.ErrInvalidData
		}

		return data[cursor:end], end, nil
	}

	switch encoding {
	case fieldtype.ZStringChar8:
		return scanZString(data, cursor, dataEnd, 1)
	case fieldtype.ZStringChar16:
		return scanZString(data, cursor, dataEnd, 2)
	case fieldtype.ZStringChar32:
		return scanZString(data, cursor, dataEnd, 4)
	case fieldtype.StringLength16Char8:
		return readLengthPrefixed(data, cursor, dataEnd, 1, r)
	case fieldtype.StringLength16Char16:
		return readLengthPrefixed(data, cursor, dataEnd, 2, r)
	case fieldtype.StringLength16Char32:
		return readLengthPrefixed(data, cursor, dataEnd, 4, r)
	case fieldtype.BinaryLength16Char8:
		return readLengthPrefixed(data, cursor, dataEnd, 1, r)
	default:
		return nil, 0, errs.ErrNotSupported
	}
}

// scanZString finds the terminator (charWidth zero bytes, aligned to a
// charWidth boundary measured from cursor, the string's own first byte) and
// returns the bytes before it plus the cursor position just past it.
func scanZString(data []byte, cursor, dataEnd, charWidth int) (bytes []byte, newCursor int, err error) {
	for pos := cursor; ; pos += charWidth {
		if pos+charWidth > dataEnd {
			return nil, 0, errs.ErrInvalidData
		}

		if allZero(data[pos : pos+charWidth]) {
			return data[cursor:pos], pos + charWidth, nil
		}
	}
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}

	return true
}

// readLengthPrefixed reads a u16 element count at cursor, then that many
// charWidth-wide elements, returning the element bytes (not including the
// prefix) and the cursor position past them.
func readLengthPrefixed(data []byte, cursor, dataEnd, charWidth int, r endian.ByteReader) (bytes []byte, newCursor int, err error) {
	if cursor+2 > dataEnd {
		return nil, 0, errs.ErrInvalidData
	}

	count := int(r.ReadU16At(data, cursor))
	cursor += 2

	length := count * charWidth

	end := cursor + length
	if end > dataEnd {
		return nil, 0, errs.ErrInvalidData
	}

	return data[cursor:end], end, nil
}

// readVArrayCount reads the u16 element count VArray fields carry inline in
// the payload at the point the field is reached.
func readVArrayCount(data []byte, cursor, dataEnd int, r endian.ByteReader) (count int, newCursor int, err error) {
	if cursor+2 > dataEnd {
		return 0, 0, errs.ErrInvalidData
	}

	return int(r.ReadU16At(data, cursor)), cursor + 2, nil
}
