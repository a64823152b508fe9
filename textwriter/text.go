package textwriter

import (
	"net/netip"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/eventheader/errs"
	"github.com/arloliu/eventheader/fieldtype"
)

// WriteItemText writes one decoded element's text representation to sink.
// value.Bytes must hold exactly one element (TypeSize() bytes for a fixed
// width encoding, or the already-scanned variable-length span); callers
// iterating an array call this once per ArrayValue state, not once for the
// whole array.
func WriteItemText(sink Sink, value fieldtype.ItemValue, opts ConvertOptions) error {
	t := value.Type
	b := value.Bytes

	switch t.Encoding {
	case fieldtype.Struct:
		return sink.WriteByte('{')
	case fieldtype.ZStringChar8, fieldtype.StringLength16Char8, fieldtype.BinaryLength16Char8:
		return writeString8(sink, t, b, opts)
	case fieldtype.ZStringChar16, fieldtype.StringLength16Char16:
		return writeString16(sink, t, b, opts)
	case fieldtype.ZStringChar32, fieldtype.StringLength16Char32:
		return writeString32(sink, t, b, opts)
	default:
		return writeScalar(sink, t, b, opts)
	}
}

func writeString8(sink Sink, t fieldtype.ItemType, b []byte, opts ConvertOptions) error {
	if t.Format == fieldtype.HexBytes || t.Encoding == fieldtype.BinaryLength16Char8 && t.Format != fieldtype.String8 {
		return writeHexBytes(sink, b)
	}

	if opts.has(StringsQuote) {
		if err := sink.WriteByte('"'); err != nil {
			return err
		}
	}

	if err := WriteLatin1Fast(sink, b); err != nil {
		return err
	}

	if opts.has(StringsQuote) {
		return sink.WriteByte('"')
	}

	return nil
}

func writeString16(sink Sink, t fieldtype.ItemType, b []byte, opts ConvertOptions) error {
	s, err := decodeUTF16(b, t.Reader().DataBigEndian())
	if err != nil {
		return err
	}

	if opts.has(StringsQuote) {
		s = `"` + s + `"`
	}

	_, err = sink.WriteString(s)

	return err
}

func writeString32(sink Sink, t fieldtype.ItemType, b []byte, opts ConvertOptions) error {
	s := decodeUTF32(b, t.Reader().DataBigEndian())
	if opts.has(StringsQuote) {
		s = `"` + s + `"`
	}

	_, err := sink.WriteString(s)

	return err
}

func writeHexBytes(sink Sink, b []byte) error {
	for _, c := range b {
		if err := sink.WriteByte(hexDigits[c>>4]); err != nil {
			return err
		}

		if err := sink.WriteByte(hexDigits[c&0x0F]); err != nil {
			return err
		}
	}

	return nil
}

func writeScalar(sink Sink, t fieldtype.ItemType, b []byte, opts ConvertOptions) error {
	switch t.Format {
	case fieldtype.Uuid:
		return writeUUID(sink, b)
	case fieldtype.IPv4:
		return writeIPv4(sink, b)
	case fieldtype.IPv6:
		return writeIPv6(sink, b)
	case fieldtype.Boolean:
		return writeBoolean(sink, b, t, opts)
	case fieldtype.Time:
		return writeTime(sink, b, t, opts)
	case fieldtype.HexInt, fieldtype.HexBytes:
		return writeHexInt(sink, b, t)
	case fieldtype.Port:
		return writePort(sink, b)
	case fieldtype.Float:
		return writeFloat(sink, b, t)
	case fieldtype.SignedInt, fieldtype.Errno, fieldtype.Pid:
		return writeSignedInt(sink, b, t)
	default:
		return writeUnsignedInt(sink, b, t)
	}
}

func readUint(b []byte, t fieldtype.ItemType) uint64 {
	r := t.Reader()

	switch t.TypeSize() {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(r.Uint16([2]byte(b)))
	case 4:
		return uint64(r.Uint32([4]byte(b)))
	case 8:
		return r.Uint64([8]byte(b))
	default:
		return 0
	}
}

func readInt(b []byte, t fieldtype.ItemType) int64 {
	r := t.Reader()

	switch t.TypeSize() {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(r.Int16([2]byte(b)))
	case 4:
		return int64(r.Int32([4]byte(b)))
	case 8:
		return r.Int64([8]byte(b))
	default:
		return 0
	}
}

func writeUnsignedInt(sink Sink, b []byte, t fieldtype.ItemType) error {
	_, err := sink.WriteString(strconv.FormatUint(readUint(b, t), 10))

	return err
}

func writeSignedInt(sink Sink, b []byte, t fieldtype.ItemType) error {
	_, err := sink.WriteString(strconv.FormatInt(readInt(b, t), 10))

	return err
}

func writeHexInt(sink Sink, b []byte, t fieldtype.ItemType) error {
	if t.TypeSize() == 0 {
		return writeHexBytes(sink, b)
	}

	if _, err := sink.WriteString("0x"); err != nil {
		return err
	}

	_, err := sink.WriteString(strconv.FormatUint(readUint(b, t), 16))

	return err
}

func writeFloat(sink Sink, b []byte, t fieldtype.ItemType) error {
	r := t.Reader()

	var f float64

	switch t.TypeSize() {
	case 4:
		f = float64(r.Float32([4]byte(b)))
	case 8:
		f = r.Float64([8]byte(b))
	default:
		return errs.ErrInvalidData
	}

	_, err := sink.WriteString(strconv.FormatFloat(f, 'g', -1, 64))

	return err
}

func writeBoolean(sink Sink, b []byte, t fieldtype.ItemType, opts ConvertOptions) error {
	v := readUint(b, t)

	switch v {
	case 0:
		_, err := sink.WriteString("false")

		return err
	case 1:
		_, err := sink.WriteString("true")

		return err
	default:
		if opts.has(BoolOutOfRangeAsString) {
			_, err := sink.WriteString(strconv.FormatUint(v, 10))

			return err
		}

		_, err := sink.WriteString("true")

		return err
	}
}

func writeTime(sink Sink, b []byte, t fieldtype.ItemType, opts ConvertOptions) error {
	sec := readInt(b, t)
	tm := time.Unix(sec, 0).UTC()

	if _, err := sink.WriteString(tm.Format(time.RFC3339)); err != nil {
		return err
	}

	if opts.has(UnixTimeWithSeconds) {
		if _, err := sink.WriteString(" ("); err != nil {
			return err
		}

		if _, err := sink.WriteString(strconv.FormatInt(sec, 10)); err != nil {
			return err
		}

		return sink.WriteByte(')')
	}

	return nil
}

func writePort(sink Sink, b []byte) error {
	if len(b) != 2 {
		return errs.ErrInvalidData
	}

	// Port fields are carried in network (big-endian) byte order on the
	// wire regardless of the event's own declared endianness.
	v := uint16(b[0])<<8 | uint16(b[1])

	_, err := sink.WriteString(strconv.FormatUint(uint64(v), 10))

	return err
}

func writeIPv4(sink Sink, b []byte) error {
	if len(b) != 4 {
		return errs.ErrInvalidData
	}

	addr := netip.AddrFrom4([4]byte(b))
	_, err := sink.WriteString(addr.String())

	return err
}

func writeIPv6(sink Sink, b []byte) error {
	if len(b) != 16 {
		return errs.ErrInvalidData
	}

	addr := netip.AddrFrom16([16]byte(b))
	_, err := sink.WriteString(addr.String())

	return err
}

func writeUUID(sink Sink, b []byte) error {
	if len(b) != 16 {
		return errs.ErrInvalidData
	}

	id, err := uuid.FromBytes(b)
	if err != nil {
		return err
	}

	_, err = sink.WriteString(id.String())

	return err
}
