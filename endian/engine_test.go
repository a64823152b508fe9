package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsHostBigEndian(t *testing.T) {
	result := IsHostBigEndian()
	expected := hostOrder == binary.BigEndian
	require.Equal(t, expected, result)

	for range 10 {
		require.Equal(t, result, IsHostBigEndian())
	}
}

func TestHostEndianMatchesHost(t *testing.T) {
	r := HostEndian()
	require.True(t, r.SameAsHost())
}

func TestSwapEndianOppositeOfHost(t *testing.T) {
	r := SwapEndian()
	require.False(t, r.SameAsHost())
	require.Equal(t, !IsHostBigEndian(), r.DataBigEndian())
}

func TestFromLittleEndianFlag(t *testing.T) {
	le := FromLittleEndianFlag(true)
	require.False(t, le.DataBigEndian())

	be := FromLittleEndianFlag(false)
	require.True(t, be.DataBigEndian())
}

func TestUint16RoundTrip(t *testing.T) {
	le := FromLittleEndianFlag(true)
	require.Equal(t, uint16(0x0102), le.Uint16([2]byte{0x02, 0x01}))

	be := FromLittleEndianFlag(false)
	require.Equal(t, uint16(0x0102), be.Uint16([2]byte{0x01, 0x02}))
}

func TestUint32RoundTrip(t *testing.T) {
	le := FromLittleEndianFlag(true)
	require.Equal(t, uint32(0x01020304), le.Uint32([4]byte{0x04, 0x03, 0x02, 0x01}))

	be := FromLittleEndianFlag(false)
	require.Equal(t, uint32(0x01020304), be.Uint32([4]byte{0x01, 0x02, 0x03, 0x04}))
}

func TestUint64RoundTrip(t *testing.T) {
	le := FromLittleEndianFlag(true)
	want := uint64(0x0102030405060708)
	b := [8]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	require.Equal(t, want, le.Uint64(b))

	be := FromLittleEndianFlag(false)
	bBE := [8]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	require.Equal(t, want, be.Uint64(bBE))
}

func TestSignedReads(t *testing.T) {
	le := FromLittleEndianFlag(true)
	require.Equal(t, int16(-2), le.Int16([2]byte{0xFE, 0xFF}))
	require.Equal(t, int32(-2), le.Int32([4]byte{0xFE, 0xFF, 0xFF, 0xFF}))
	require.Equal(t, int64(-2), le.Int64([8]byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}))
}

func TestFloatReads(t *testing.T) {
	le := FromLittleEndianFlag(true)

	var buf4 [4]byte
	binary.LittleEndian.PutUint32(buf4[:], 0x3F800000) // 1.0f
	require.InDelta(t, float32(1.0), le.Float32(buf4), 0)

	var buf8 [8]byte
	binary.LittleEndian.PutUint64(buf8[:], 0x3FF0000000000000) // 1.0
	require.InDelta(t, float64(1.0), le.Float64(buf8), 0)
}

func TestReadAtHelpers(t *testing.T) {
	le := FromLittleEndianFlag(true)
	data := []byte{0x2A, 0x00, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	require.Equal(t, uint16(0x002A), le.ReadU16At(data, 0))
	require.Equal(t, uint32(0x0000002A), le.ReadU32At(data, 0))
	require.Equal(t, uint64(0x0807060504030201), le.ReadU64At(data, 5))
}
