package decode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eventheader/endian"
	"github.com/arloliu/eventheader/fieldtype"
)

func TestReadFieldBytesFixedWidth(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	bytes, cursor, err := readFieldBytes(data, 0, len(data), fieldtype.Value32, endian.HostEndian())
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, bytes)
	require.Equal(t, 4, cursor)
}

func TestReadFieldBytesFixedWidthOutOfBounds(t *testing.T) {
	data := []byte{1, 2, 3}
	_, _, err := readFieldBytes(data, 0, len(data), fieldtype.Value32, endian.HostEndian())
	require.Error(t, err)
}

func TestScanZStringChar8(t *testing.T) {
	data := []byte("hi\x00tail")
	bytes, cursor, err := readFieldBytes(data, 0, len(data), fieldtype.ZStringChar8, endian.HostEndian())
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), bytes)
	require.Equal(t, 3, cursor)
}

func TestScanZStringChar8Unterminated(t *testing.T) {
	data := []byte("hi")
	_, _, err := readFieldBytes(data, 0, len(data), fieldtype.ZStringChar8, endian.HostEndian())
	require.Error(t, err)
}

func TestScanZStringChar16AlignedToFieldStart(t *testing.T) {
	// "h\0i\0\0\0" as UTF-16LE-ish code units: 0x0068 0x0069 0x0000
	data := []byte{0x68, 0x00, 0x69, 0x00, 0x00, 0x00, 0xFF}
	bytes, cursor, err := readFieldBytes(data, 0, len(data), fieldtype.ZStringChar16, endian.HostEndian())
	require.NoError(t, err)
	require.Equal(t, []byte{0x68, 0x00, 0x69, 0x00}, bytes)
	require.Equal(t, 6, cursor)
}

func TestScanZStringChar16OddTrailingByteIsInvalid(t *testing.T) {
	data := []byte{0x68, 0x00, 0x69} // can't form another 2-byte unit
	_, _, err := readFieldBytes(data, 0, len(data), fieldtype.ZStringChar16, endian.HostEndian())
	require.Error(t, err)
}

func TestReadLengthPrefixedStringChar8(t *testing.T) {
	data := append([]byte{3, 0}, []byte("abcxyz")...)
	bytes, cursor, err := readFieldBytes(data, 0, len(data), fieldtype.StringLength16Char8, endian.HostEndian())
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), bytes)
	require.Equal(t, 5, cursor)
}

func TestReadLengthPrefixedStringChar16(t *testing.T) {
	data := append([]byte{2, 0}, []byte{0x41, 0x00, 0x42, 0x00, 0xFF}...)
	bytes, cursor, err := readFieldBytes(data, 0, len(data), fieldtype.StringLength16Char16, endian.HostEndian())
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 0x00, 0x42, 0x00}, bytes)
	require.Equal(t, 6, cursor)
}

func TestReadLengthPrefixedOverflowsIsInvalid(t *testing.T) {
	data := []byte{10, 0, 1, 2} // declares 10 bytes, only 2 present
	_, _, err := readFieldBytes(data, 0, len(data), fieldtype.BinaryLength16Char8, endian.HostEndian())
	require.Error(t, err)
}

func TestReadVArrayCount(t *testing.T) {
	data := []byte{5, 0, 9, 9}
	count, cursor, err := readVArrayCount(data, 0, len(data), endian.HostEndian())
	require.NoError(t, err)
	require.Equal(t, 5, count)
	require.Equal(t, 2, cursor)
}

func TestReadVArrayCountOutOfBounds(t *testing.T) {
	data := []byte{5}
	_, _, err := readVArrayCount(data, 0, len(data), endian.HostEndian())
	require.Error(t, err)
}
