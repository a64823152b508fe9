package eventheader

import (
	"github.com/arloliu/eventheader/endian"
	"github.com/arloliu/eventheader/errs"
)

// ExtensionBlockHeaderSize is the fixed byte length of one extension block's
// size+kind header, not counting its payload.
const ExtensionBlockHeaderSize = 4

// ExtensionKind identifies the payload carried by one extension block.
type ExtensionKind uint16

const (
	// KindMetadata carries the event's schema: name and field descriptors.
	KindMetadata ExtensionKind = 0x01
	// KindActivityID carries a 16- or 32-byte correlation identifier.
	KindActivityID ExtensionKind = 0x02

	kindMoreBlocksFlag uint16 = 0x8000
	kindValueMask      uint16 = 0x7FFF
)

// WalkExtensions walks the chain of extension blocks starting at offset
// within data, skipping any kind it does not recognize while preserving the
// chain, and returns the Metadata and ActivityId payloads found (nil if
// absent) along with the offset immediately past the last block — the start
// of the event's field data.
//
// Returns errs.ErrInvalidData if any block's declared size does not fit in
// the remaining buffer.
func WalkExtensions(data []byte, offset int, r endian.ByteReader) (metadata, activityID []byte, dataStart int, err error) {
	for {
		if offset+ExtensionBlockHeaderSize > len(data) {
			return nil, nil, 0, errs.ErrInvalidData
		}

		size := int(r.ReadU16At(data, offset))
		kindRaw := r.ReadU16At(data, offset+2)
		more := kindRaw&kindMoreBlocksFlag != 0
		kind := ExtensionKind(kindRaw & kindValueMask)

		payloadStart := offset + ExtensionBlockHeaderSize
		payloadEnd := payloadStart + size
		if payloadEnd > len(data) || payloadEnd < payloadStart {
			return nil, nil, 0, errs.ErrInvalidData
		}

		payload := data[payloadStart:payloadEnd]

		switch kind {
		case KindMetadata:
			metadata = payload
		case KindActivityID:
			activityID = payload
		default:
			// Unknown kind: skip, preserving the chain.
		}

		offset = payloadEnd
		if !more {
			break
		}
	}

	return metadata, activityID, offset, nil
}
