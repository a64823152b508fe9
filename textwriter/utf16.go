package textwriter

import "golang.org/x/text/encoding/unicode"

// decodeUTF16 converts UTF-16 code units in b (ZStringChar16/
// StringLength16Char16 field bytes, no BOM — the event's own byte order
// applies) into a UTF-8 string, the same decoder saferwall/pe's
// DecodeUTF16String uses for UTF-16 VERSIONINFO resource strings.
func decodeUTF16(b []byte, bigEndian bool) (string, error) {
	endianness := unicode.LittleEndian
	if bigEndian {
		endianness = unicode.BigEndian
	}

	decoder := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder()

	s, err := decoder.Bytes(b)
	if err != nil {
		return "", err
	}

	return string(s), nil
}

// decodeUTF32 converts UTF-32/UCS-4 code units in b to a UTF-8 string.
// golang.org/x/text has no UTF-32 codec, so this decodes directly:
// ZStringChar32/StringLength16Char32 fields are rare (used mainly for
// Linux wchar_t on platforms where wchar_t is 4 bytes).
func decodeUTF32(b []byte, bigEndian bool) string {
	out := make([]rune, 0, len(b)/4)

	for i := 0; i+4 <= len(b); i += 4 {
		var cp uint32
		if bigEndian {
			cp = uint32(b[i])<<24 | uint32(b[i+1])<<16 | uint32(b[i+2])<<8 | uint32(b[i+3])
		} else {
			cp = uint32(b[i]) | uint32(b[i+1])<<8 | uint32(b[i+2])<<16 | uint32(b[i+3])<<24
		}

		out = append(out, rune(cp))
	}

	return string(out)
}
