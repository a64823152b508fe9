package eventheader

import (
	"github.com/arloliu/eventheader/endian"
	"github.com/arloliu/eventheader/errs"
)

// PreambleSize is the fixed byte length of the EventHeader preamble.
const PreambleSize = 8

// Preamble flag bits (byte offset 0).
const (
	FlagLittleEndian uint8 = 1 << 0
	FlagExtension    uint8 = 1 << 1
)

// Preamble is the fixed-layout record at the start of every EventHeader
// event payload.
type Preamble struct {
	Flags   uint8
	Version uint8
	ID      uint16
	Tag     uint16
	Opcode  uint8
	Level   uint8
}

// LittleEndian reports whether the payload following the preamble (including
// the extension chain and field data) was written in little-endian order.
func (p Preamble) LittleEndian() bool { return p.Flags&FlagLittleEndian != 0 }

// HasExtension reports whether an extension block chain follows the preamble.
func (p Preamble) HasExtension() bool { return p.Flags&FlagExtension != 0 }

// ParsePreamble decodes the 8-byte EventHeader preamble from the start of
// data and returns the reader implied by its LittleEndian flag.
//
// Returns errs.ErrInvalidData if data is shorter than PreambleSize.
func ParsePreamble(data []byte) (Preamble, endian.ByteReader, error) {
	if len(data) < PreambleSize {
		return Preamble{}, endian.ByteReader{}, errs.ErrInvalidData
	}

	p := Preamble{
		Flags:   data[0],
		Version: data[1],
		Opcode:  data[6],
		Level:   data[7],
	}

	r := endian.FromLittleEndianFlag(p.Flags&FlagLittleEndian != 0)
	p.ID = r.ReadU16At(data, 2)
	p.Tag = r.ReadU16At(data, 4)

	return p, r, nil
}
