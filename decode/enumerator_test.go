package decode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eventheader/errs"
	"github.com/arloliu/eventheader/eventheader"
	"github.com/arloliu/eventheader/fieldtype"
)

// buildEvent assembles one EventHeader event buffer: an 8-byte preamble with
// the Extension flag set, a single Metadata extension block, and the field
// data section. The extension block header is written in the event's own
// byte order, as the LittleEndian flag declares.
func buildEvent(littleEndian bool, metadata []byte, fieldData []byte) []byte {
	flags := eventheader.FlagExtension

	var order binary.ByteOrder = binary.BigEndian
	if littleEndian {
		flags |= eventheader.FlagLittleEndian
		order = binary.LittleEndian
	}

	buf := []byte{flags, 1, 0, 0, 0, 0, 0, 0}

	head := make([]byte, 4)
	order.PutUint16(head[0:2], uint16(len(metadata)))
	order.PutUint16(head[2:4], uint16(eventheader.KindMetadata)) // no MoreBlocks bit

	buf = append(buf, head...)
	buf = append(buf, metadata...)
	buf = append(buf, fieldData...)

	return buf
}

func u16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }

func TestScenario1_MinimalEventNoFields(t *testing.T) {
	metadata := append([]byte("evt\x00"), 0x00)
	buf := buildEvent(true, metadata, nil)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "evt", buf))
	require.Equal(t, "evt", enum.EventName())
	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestScenario2_OneU32Field(t *testing.T) {
	metadata := []byte("e\x00x\x00")
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, 0x00) // terminator

	fieldData := []byte{0x2A, 0x00, 0x00, 0x00}
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, "x", enum.Name())
	require.Equal(t, fieldtype.Value32, enum.ItemType().Encoding)
	require.Equal(t, fieldData, enum.ItemValue().Bytes)
	require.Equal(t, uint32(42), enum.ItemType().Reader().Uint32([4]byte(fieldData)))
	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestScenario3_CArrayOfThreeU16(t *testing.T) {
	metadata := []byte("e\x00a\x00")
	metadata = append(metadata, uint8(fieldtype.Value16)|fieldtype.CArrayFlag)
	metadata = append(metadata, u16le(3)...)
	metadata = append(metadata, 0x00)

	fieldData := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))

	require.Equal(t, StateArrayBegin, enum.MoveNext())
	require.Equal(t, "a", enum.Name())
	require.Equal(t, 3, enum.ItemType().ElementCount())
	require.Empty(t, enum.ItemValue().Bytes)

	require.Equal(t, StateArrayValue, enum.MoveNext())
	require.Equal(t, []byte{0x01, 0x00}, enum.ItemValue().Bytes)

	require.Equal(t, StateArrayValue, enum.MoveNext())
	require.Equal(t, []byte{0x02, 0x00}, enum.ItemValue().Bytes)

	require.Equal(t, StateArrayValue, enum.MoveNext())
	require.Equal(t, []byte{0x03, 0x00}, enum.ItemValue().Bytes)

	require.Equal(t, StateArrayEnd, enum.MoveNext())
	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestScenario4_StructWithTwoSubfields(t *testing.T) {
	metadata := []byte("e\x00s\x00")
	metadata = append(metadata, uint8(fieldtype.Struct)|fieldtype.EncodingChainFlag)
	metadata = append(metadata, 2) // format byte: 2 sub-fields
	metadata = append(metadata, "x\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, "y\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, 0x00)

	fieldData := []byte{0xAA, 0x00, 0x00, 0x00, 0xBB, 0x00, 0x00, 0x00}
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))

	require.Equal(t, StateStructBegin, enum.MoveNext())
	require.Equal(t, "s", enum.Name())
	require.Empty(t, enum.ItemValue().Bytes)

	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, "x", enum.Name())
	require.Equal(t, []byte{0xAA, 0x00, 0x00, 0x00}, enum.ItemValue().Bytes)

	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, "y", enum.Name())
	require.Equal(t, []byte{0xBB, 0x00, 0x00, 0x00}, enum.ItemValue().Bytes)

	require.Equal(t, StateStructEnd, enum.MoveNext())
	require.Equal(t, "s", enum.Name())

	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestScenario5_TruncatedPayloadIsInvalidData(t *testing.T) {
	metadata := []byte("e\x00x\x00")
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, 0x00)

	fieldData := []byte{0x2A, 0x00, 0x00} // only 3 of 4 bytes
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateError, enum.MoveNext())
	require.Error(t, enum.Err())

	// Idempotence: repeated MoveNext in Error state is a no-op.
	require.Equal(t, StateError, enum.MoveNext())
	require.Equal(t, StateError, enum.MoveNext())
}

func TestScenario6_BigEndianEventOnLittleEndianHost(t *testing.T) {
	metadata := []byte("e\x00x\x00")
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, 0x00)

	fieldData := []byte{0x00, 0x00, 0x00, 0x2A} // 42, big-endian
	buf := buildEvent(false, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateValue, enum.MoveNext())

	item := enum.ItemType()
	require.True(t, item.Reader().DataBigEndian())
	require.Equal(t, uint32(42), item.Reader().Uint32([4]byte(enum.ItemValue().Bytes)))
}

func TestZeroLengthVArrayEmitsBeginThenEnd(t *testing.T) {
	metadata := []byte("e\x00a\x00")
	metadata = append(metadata, uint8(fieldtype.Value16)|fieldtype.VArrayFlag)
	metadata = append(metadata, 0x00)

	fieldData := u16le(0) // VArray count, read from payload
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateArrayBegin, enum.MoveNext())
	require.Equal(t, 0, enum.ItemType().ElementCount())
	require.Equal(t, StateArrayEnd, enum.MoveNext())
	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestStructWithOneSubfield(t *testing.T) {
	metadata := []byte("e\x00s\x00")
	metadata = append(metadata, uint8(fieldtype.Struct)|fieldtype.EncodingChainFlag)
	metadata = append(metadata, 1)
	metadata = append(metadata, "x\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value8))
	metadata = append(metadata, 0x00)

	fieldData := []byte{0x07}
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateStructBegin, enum.MoveNext())
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, "x", enum.Name())
	require.Equal(t, StateStructEnd, enum.MoveNext())
	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestFieldTagZeroIsPreservedNotAbsent(t *testing.T) {
	metadata := []byte("e\x00x\x00")
	metadata = append(metadata, uint8(fieldtype.Value32)|fieldtype.EncodingChainFlag)
	metadata = append(metadata, uint8(fieldtype.Default)|fieldtype.FormatChainFlag)
	metadata = append(metadata, 0x00, 0x00) // tag = 0
	metadata = append(metadata, 0x00)

	buf := buildEvent(true, metadata, []byte{1, 2, 3, 4})

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, uint16(0), enum.ItemType().FieldTag)
}

func TestHeaderExtensionFlagClearIsHeaderExtensionMissing(t *testing.T) {
	buf := []byte{eventheader.FlagLittleEndian, 1, 0, 0, 0, 0, 0, 0} // Extension bit clear

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateError, enum.StartEvent("prov", "", "e", buf))
	require.Error(t, enum.Err())
}

func TestStackOverflowOnExcessiveNesting(t *testing.T) {
	// 9 levels of single-field nested structs against a context limited to
	// 8 frames (root plus 7 nested structs fits; the 8th struct push does
	// not).
	const nestingDepth = 9

	metadata := []byte("e\x00")
	for i := 0; i < nestingDepth; i++ {
		metadata = append(metadata, byte('a'+i), 0x00)
		metadata = append(metadata, uint8(fieldtype.Struct)|fieldtype.EncodingChainFlag, 1)
	}
	metadata = append(metadata, "leaf\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value8))
	metadata = append(metadata, 0x00)

	buf := buildEvent(true, metadata, []byte{1})

	ctx := NewContext(WithMaxDepth(8))
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))

	state := StateBeforeFirstItem
	for i := 0; i < nestingDepth; i++ {
		state = enum.MoveNext()
		if state == StateError {
			break
		}

		require.Equal(t, StateStructBegin, state)
	}

	require.Equal(t, StateError, state)
	require.ErrorIs(t, enum.Err(), errs.ErrStackOverflow)
}

func TestNoStackOverflowWithinTightLimit(t *testing.T) {
	metadata := []byte("e\x00")
	metadata = append(metadata, "s1\x00"...)
	metadata = append(metadata, uint8(fieldtype.Struct)|fieldtype.EncodingChainFlag, 1)
	metadata = append(metadata, "s2\x00"...)
	metadata = append(metadata, uint8(fieldtype.Struct)|fieldtype.EncodingChainFlag, 1)
	metadata = append(metadata, "leaf\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value8))
	metadata = append(metadata, 0x00)

	buf := buildEvent(true, metadata, []byte{1})

	ctx := NewContext(WithMaxDepth(8)) // minimum allowed
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateStructBegin, enum.MoveNext()) // depth 2 (root, s1)
	require.Equal(t, StateStructBegin, enum.MoveNext()) // depth 3 (root, s1, s2)
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, StateStructEnd, enum.MoveNext())
	require.Equal(t, StateStructEnd, enum.MoveNext())
	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestMoveNextSiblingSkipsFixedWidthArray(t *testing.T) {
	metadata := []byte("e\x00a\x00")
	metadata = append(metadata, uint8(fieldtype.Value32)|fieldtype.CArrayFlag)
	metadata = append(metadata, u16le(2)...)
	metadata = append(metadata, "tail\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value8))
	metadata = append(metadata, 0x00)

	fieldData := []byte{1, 0, 0, 0, 2, 0, 0, 0, 9}
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateArrayBegin, enum.MoveNext())
	require.Equal(t, StateArrayEnd, enum.MoveNextSibling())
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, "tail", enum.Name())
	require.Equal(t, []byte{9}, enum.ItemValue().Bytes)
}

func TestMoveNextSiblingSkipsStruct(t *testing.T) {
	metadata := []byte("e\x00s\x00")
	metadata = append(metadata, uint8(fieldtype.Struct)|fieldtype.EncodingChainFlag, 2)
	metadata = append(metadata, "x\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, "y\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, "tail\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value8))
	metadata = append(metadata, 0x00)

	fieldData := []byte{0, 0, 0, 0, 0, 0, 0, 0, 9}
	buf := buildEvent(true, metadata, fieldData)

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateStructBegin, enum.MoveNext())
	require.Equal(t, StateStructEnd, enum.MoveNextSibling())
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, "tail", enum.Name())
}

func TestSchemaCacheReusesDescriptorsAcrossEvents(t *testing.T) {
	metadata := []byte("e\x00x\x00")
	metadata = append(metadata, uint8(fieldtype.Value32))
	metadata = append(metadata, 0x00)

	buf1 := buildEvent(true, metadata, []byte{1, 0, 0, 0})
	buf2 := buildEvent(true, metadata, []byte{2, 0, 0, 0})

	ctx := NewContext(WithSchemaCache())
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf1))
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, []byte{1, 0, 0, 0}, enum.ItemValue().Bytes)
	require.Equal(t, StateAfterLastItem, enum.MoveNext())

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf2))
	require.True(t, enum.usesCache)
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, []byte{2, 0, 0, 0}, enum.ItemValue().Bytes)
	require.Equal(t, StateAfterLastItem, enum.MoveNext())
}

func TestQualifiedNameIncludesEnclosingStructs(t *testing.T) {
	metadata := []byte("e\x00s\x00")
	metadata = append(metadata, uint8(fieldtype.Struct)|fieldtype.EncodingChainFlag, 1)
	metadata = append(metadata, "leaf\x00"...)
	metadata = append(metadata, uint8(fieldtype.Value8))
	metadata = append(metadata, 0x00)

	buf := buildEvent(true, metadata, []byte{7})

	ctx := NewContext()
	enum := NewEnumerator(ctx)

	require.Equal(t, StateBeforeFirstItem, enum.StartEvent("prov", "", "e", buf))
	require.Equal(t, StateStructBegin, enum.MoveNext())
	require.Equal(t, StateValue, enum.MoveNext())
	require.Equal(t, "s.leaf", enum.QualifiedName())
}
