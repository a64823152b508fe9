package textwriter

import "github.com/arloliu/eventheader/fieldtype"

// WriteItemJSON writes value as a JSON value: a quoted, escaped string for
// text encodings, a bare number for numeric formats, true/false for
// Boolean, and "{" for a Struct (the caller is mid-walk of a Struct's
// sub-fields and is responsible for writing the closing "}" once
// StructEnd is reached — WriteItemJSON only ever writes one item).
func WriteItemJSON(sink Sink, value fieldtype.ItemValue, opts ConvertOptions) error {
	t := value.Type

	switch {
	case t.Encoding == fieldtype.Struct:
		return sink.WriteByte('{')
	case isJSONString(t):
		if err := sink.WriteByte('"'); err != nil {
			return err
		}

		if err := writeJSONStringBody(sink, value, opts); err != nil {
			return err
		}

		return sink.WriteByte('"')
	case t.Format == fieldtype.Boolean:
		return writeBoolean(sink, value.Bytes, t, opts)
	default:
		return WriteItemText(sink, value, opts&^StringsQuote)
	}
}

func isJSONString(t fieldtype.ItemType) bool {
	switch t.Encoding {
	case fieldtype.ZStringChar8, fieldtype.ZStringChar16, fieldtype.ZStringChar32,
		fieldtype.StringLength16Char8, fieldtype.StringLength16Char16, fieldtype.StringLength16Char32:
		return t.Format != fieldtype.HexBytes
	default:
		switch t.Format {
		case fieldtype.Uuid, fieldtype.IPv4, fieldtype.IPv6, fieldtype.Time:
			return true
		default:
			return false
		}
	}
}

// writeJSONStringBody renders value's text the way WriteItemText would,
// but through a JSON-escaping intermediate so control characters and
// quotes inside the payload (possible in a BinaryLength16Char8/HexBytes
// field misclassified as text, or a malformed ZString) don't break the
// surrounding document.
func writeJSONStringBody(sink Sink, value fieldtype.ItemValue, opts ConvertOptions) error {
	var buf jsonEscapeBuffer

	if err := WriteItemText(&buf, value, opts&^StringsQuote); err != nil {
		return err
	}

	_, err := sink.WriteString(buf.String())

	return err
}

// jsonEscapeBuffer is a Sink that JSON-escapes everything written to it,
// then hands the escaped text back out as one string.
type jsonEscapeBuffer struct {
	out []byte
}

func (j *jsonEscapeBuffer) WriteByte(c byte) error {
	switch c {
	case '"':
		j.out = append(j.out, '\\', '"')
	case '\\':
		j.out = append(j.out, '\\', '\\')
	case '\n':
		j.out = append(j.out, '\\', 'n')
	case '\r':
		j.out = append(j.out, '\\', 'r')
	case '\t':
		j.out = append(j.out, '\\', 't')
	default:
		if c < 0x20 {
			j.out = append(j.out, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F])
		} else {
			j.out = append(j.out, c)
		}
	}

	return nil
}

func (j *jsonEscapeBuffer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = j.WriteByte(s[i])
	}

	return len(s), nil
}

func (j *jsonEscapeBuffer) String() string { return string(j.out) }

// WriteFieldNameJSON writes a quoted JSON object key for name, applying
// the same escaping writeJSONStringBody uses for string values.
func WriteFieldNameJSON(sink Sink, name string) error {
	if err := sink.WriteByte('"'); err != nil {
		return err
	}

	var buf jsonEscapeBuffer

	_, _ = buf.WriteString(name)

	if _, err := sink.WriteString(buf.String()); err != nil {
		return err
	}

	return sink.WriteByte('"')
}
