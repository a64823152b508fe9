package textwriter

// WriteLatin1 expands b one byte at a time, treating each byte as a Latin-1
// (ISO-8859-1) code point and writing its UTF-8 encoding: bytes below 0x80
// pass through unchanged, bytes 0x80-0xFF become the two-byte UTF-8
// sequence for U+0080-U+00FF.
func WriteLatin1(sink Sink, b []byte) error {
	for _, c := range b {
		if err := writeLatin1Byte(sink, c); err != nil {
			return err
		}
	}

	return nil
}

// WriteLatin1Fast writes b the same way WriteLatin1 does, but writes each
// run of ASCII bytes (valid UTF-8 as-is) with a single WriteString and
// expands only the bytes >= 0x80 one at a time. Output is byte-for-byte
// identical to WriteLatin1; this exists
// purely so the common all-ASCII case avoids per-byte Sink calls.
func WriteLatin1Fast(sink Sink, b []byte) error {
	start := 0

	for i, c := range b {
		if c < 0x80 {
			continue
		}

		if i > start {
			if _, err := sink.WriteString(string(b[start:i])); err != nil {
				return err
			}
		}

		if err := writeLatin1Byte(sink, c); err != nil {
			return err
		}

		start = i + 1
	}

	if start < len(b) {
		if _, err := sink.WriteString(string(b[start:])); err != nil {
			return err
		}
	}

	return nil
}

func writeLatin1Byte(sink Sink, c byte) error {
	if c < 0x80 {
		return sink.WriteByte(c)
	}

	if err := sink.WriteByte(0xC0 | (c >> 6)); err != nil {
		return err
	}

	return sink.WriteByte(0x80 | (c & 0x3F))
}
