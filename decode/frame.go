package decode

import (
	"github.com/arloliu/eventheader/eventheader"
	"github.com/arloliu/eventheader/fieldtype"
)

// frameKind distinguishes the three shapes of stack frame the enumerator
// pushes while descending through a schema.
type frameKind uint8

const (
	frameRoot frameKind = iota
	frameStruct
	frameArray
)

// unboundedRemaining marks a root frame's remaining_field_count as "keep
// reading fields until the metadata terminator", as opposed to a struct
// frame's exact sub-field count.
const unboundedRemaining = -1

// frame is one entry of the enumerator's field stack. Its fields are reused
// in place across both struct frames (remaining/metaCursor) and array frames
// (elementIndex/elementCount/elemDesc); only one role is active per frame,
// selected by kind.
type frame struct {
	kind frameKind
	name []byte

	// frameRoot / frameStruct.
	remaining  int // remaining_field_count; unboundedRemaining for frameRoot
	metaCursor int // next MetadataScanner read position

	// frameArray.
	elemDesc     eventheader.FieldDescriptor
	elementIndex int // index of the next element to emit
	elementCount int

	// itemType is the ItemType to emit at StructEnd/ArrayEnd: built once at
	// push time so pop doesn't need to re-derive it.
	itemType fieldtype.ItemType
}
