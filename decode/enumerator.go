package decode

import (
	"unsafe"

	"github.com/arloliu/eventheader/endian"
	"github.com/arloliu/eventheader/errs"
	"github.com/arloliu/eventheader/eventheader"
	"github.com/arloliu/eventheader/fieldtype"
)

// Enumerator walks one event buffer's field schema exactly once, in
// document order, yielding a borrowed ItemType/ItemValue at each
// value-bearing state.
//
// An Enumerator is cheap and need not be pooled itself; the Context it binds
// to owns the reusable, potentially larger field stack. Nothing on Enumerator
// allocates once StartEvent's one-time metadata scan (or cache hit) is done.
type Enumerator struct {
	ctx *Context

	data    []byte
	dataEnd int
	cursor  int
	reader  endian.ByteReader
	scanner eventheader.MetadataScanner

	cached    []eventheader.FieldDescriptor
	usesCache bool

	providerName    string
	providerOptions string
	tracepointName  string
	eventName       []byte
	activityID      []byte

	state State
	err   error

	name  []byte
	item  fieldtype.ItemType
	value fieldtype.ItemValue
}

// NewEnumerator constructs an Enumerator bound to ctx. ctx may be shared
// sequentially across many Enumerator values (e.g. reconstructed per event)
// as long as only one is alive at a time, since it owns the field stack.
func NewEnumerator(ctx *Context) *Enumerator {
	return &Enumerator{ctx: ctx, state: StateNone}
}

// State returns the enumerator's current state.
func (e *Enumerator) State() State { return e.state }

// Err returns the error that produced StateError, or nil.
func (e *Enumerator) Err() error { return e.err }

// EventName returns the event name read from the Metadata extension.
func (e *Enumerator) EventName() string { return bytesToString(e.eventName) }

// ProviderName returns the provider name StartEvent was called with.
func (e *Enumerator) ProviderName() string { return e.providerName }

// ProviderOptions returns the provider options string StartEvent was called
// with, which may be empty.
func (e *Enumerator) ProviderOptions() string { return e.providerOptions }

// TracepointName returns the tracepoint name StartEvent was called with.
func (e *Enumerator) TracepointName() string { return e.tracepointName }

// ActivityID returns the ActivityId extension payload, or nil if absent.
func (e *Enumerator) ActivityID() []byte { return e.activityID }

// Name returns the current field's name, valid only until the next
// MoveNext/MoveNextSibling call.
func (e *Enumerator) Name() string { return bytesToString(e.name) }

// ItemType returns the current field's type description.
func (e *Enumerator) ItemType() fieldtype.ItemType { return e.item }

// ItemValue returns the current field's borrowed bytes plus type.
func (e *Enumerator) ItemValue() fieldtype.ItemValue { return e.value }

// QualifiedName builds the dotted path (outer.inner.leaf) of the current
// field through any enclosing Struct frames, using ctx's reusable scratch
// buffer. Unlike Name, this is not zero-allocation (it returns a new
// string) and is meant for diagnostics rather than the hot formatting path.
func (e *Enumerator) QualifiedName() string {
	buf := e.ctx.qualifiedBuf[:0]

	for _, f := range e.ctx.stack {
		if f.kind != frameStruct || len(f.name) == 0 {
			continue
		}

		buf = append(buf, f.name...)
		buf = append(buf, '.')
	}

	buf = append(buf, e.name...)
	e.ctx.qualifiedBuf = buf

	return string(buf)
}

// StartEvent binds a new event buffer to the enumerator, parses its
// EventHeader preamble, extension chain, and event name, and transitions to
// BeforeFirstItem (or Error).
func (e *Enumerator) StartEvent(providerName, providerOptions, tracepointName string, data []byte) State {
	e.ctx.reset()

	e.data = data
	e.dataEnd = len(data)
	e.providerName = providerName
	e.providerOptions = providerOptions
	e.tracepointName = tracepointName
	e.activityID = nil
	e.cached = nil
	e.usesCache = false

	preamble, reader, err := eventheader.ParsePreamble(data)
	if err != nil {
		return e.fail(err)
	}

	if !preamble.HasExtension() {
		return e.fail(errs.ErrHeaderExtensionMissing)
	}

	metadata, activityID, dataStart, err := eventheader.WalkExtensions(data, eventheader.PreambleSize, reader)
	if err != nil {
		return e.fail(err)
	}

	if metadata == nil {
		return e.fail(errs.ErrHeaderExtensionMissing)
	}

	e.reader = reader
	e.activityID = activityID
	e.cursor = dataStart
	e.scanner = eventheader.NewMetadataScanner(metadata, reader)

	name, fieldsCursor, err := e.scanner.EventName()
	if err != nil {
		return e.fail(err)
	}

	e.eventName = name

	if cached, key, ok := e.ctx.lookupSchema(metadata); ok {
		e.cached = cached
		e.usesCache = true
	} else if e.ctx.schemaCacheOn {
		fields, scanErr := scanAllFields(e.scanner, fieldsCursor)
		if scanErr != nil {
			return e.fail(scanErr)
		}

		e.ctx.storeSchema(key, fields)
		e.cached = fields
		e.usesCache = true
	}

	// metaCursor lives in two different spaces depending on usesCache: a
	// byte offset into the live metadata payload when scanning directly, or
	// an index into the flattened cached slice (which always starts at 0)
	// when nextDescriptor is reading from cache.
	rootCursor := fieldsCursor
	if e.usesCache {
		rootCursor = 0
	}

	root := frame{kind: frameRoot, remaining: unboundedRemaining, metaCursor: rootCursor}
	e.ctx.push(root)

	return e.setState(StateBeforeFirstItem)
}

// scanAllFields exhaustively walks scanner from cursor to the metadata
// terminator, flattening every field descriptor (including Struct
// descriptors themselves, in document order) into one slice. Nesting is
// implicit: a Struct's sub-field count tells the enumerator how many of the
// following entries belong to it, so a flat scan suffices.
func scanAllFields(scanner eventheader.MetadataScanner, cursor int) ([]eventheader.FieldDescriptor, error) {
	var fields []eventheader.FieldDescriptor

	for {
		desc, next, end, err := scanner.NextField(cursor)
		if err != nil {
			return nil, err
		}

		if end {
			return fields, nil
		}

		fields = append(fields, desc)
		cursor = next
	}
}

// nextDescriptor returns the next field descriptor for the top-of-stack
// frame, either from the live MetadataScanner or, if this event's schema was
// cache-hit, from the flattened cache slice.
func (e *Enumerator) nextDescriptor(cursorIdx int) (desc eventheader.FieldDescriptor, newCursorIdx int, end bool, err error) {
	if e.usesCache {
		if cursorIdx >= len(e.cached) {
			return eventheader.FieldDescriptor{}, cursorIdx, true, nil
		}

		return e.cached[cursorIdx], cursorIdx + 1, false, nil
	}

	return e.scanner.NextField(cursorIdx)
}

// MoveNext performs one state transition, per spec.md section 4.4's table.
func (e *Enumerator) MoveNext() State {
	if e.state.terminal() {
		return e.state
	}

	switch e.state {
	case StateArrayBegin, StateArrayValue:
		return e.advanceArray()
	case StateBeforeFirstItem, StateValue, StateStructBegin, StateStructEnd, StateArrayEnd:
		// The frame for a just-emitted StructEnd/ArrayEnd was already
		// popped at emission time, so the top of stack here is already the
		// parent: just keep consulting it.
		return e.advanceField()
	default:
		return e.fail(errs.ErrInvalidData)
	}
}

// MoveNextSibling skips the current subtree (if any) in one call. For a
// fixed-width array it jumps the data cursor directly (O(1)); otherwise it
// steps through the subtree internally (O(subtree)).
func (e *Enumerator) MoveNextSibling() State {
	switch e.state {
	case StateArrayBegin:
		top := e.ctx.top()
		if size := top.elemDesc.Encoding.TypeSize(); size > 0 {
			e.cursor += size * top.elementCount
			if e.cursor > e.dataEnd {
				return e.fail(errs.ErrInvalidData)
			}

			popped := e.ctx.pop()

			return e.emitArrayEnd(popped)
		}

		return e.skipSubtree()
	case StateStructBegin:
		return e.skipSubtree()
	default:
		return e.MoveNext()
	}
}

// skipSubtree repeatedly steps MoveNext until the frame present when
// skipSubtree was entered (the current Begin's frame) has been popped.
func (e *Enumerator) skipSubtree() State {
	depth := e.ctx.depth()

	for {
		s := e.MoveNext()
		if s == StateError || s == StateAfterLastItem {
			return s
		}

		if e.ctx.depth() < depth {
			return s
		}
	}
}

// advanceField consults the top stack frame for its next field, per the
// BeforeFirstItem/Value/StructBegin/(post-pop) branch of MoveNext.
func (e *Enumerator) advanceField() State {
	top := e.ctx.top()

	if top.kind == frameStruct && top.remaining == 0 {
		popped := e.ctx.pop()

		// The root frame always remains, so the stack is never empty here.
		e.ctx.top().metaCursor = popped.metaCursor

		return e.emitStructEnd(popped)
	}

	desc, next, end, err := e.nextDescriptor(top.metaCursor)
	if err != nil {
		return e.fail(err)
	}

	if end {
		if top.kind == frameRoot {
			return e.setState(StateAfterLastItem)
		}

		return e.fail(errs.ErrInvalidData)
	}

	top.metaCursor = next

	if top.kind == frameStruct {
		top.remaining--
	}

	if desc.Encoding == fieldtype.Struct {
		if desc.ArrayFlags != 0 {
			return e.fail(errs.ErrNotSupported)
		}

		count := desc.Format.StructFieldCount()
		if count == 0 {
			return e.fail(errs.ErrInvalidData)
		}

		item := fieldtype.NewItemType(fieldtype.Struct, desc.Format, desc.Tag, false, 1, e.reader)

		if !e.ctx.push(frame{
			kind:       frameStruct,
			name:       desc.Name,
			remaining:  int(count),
			metaCursor: next,
			itemType:   item,
		}) {
			return e.fail(errs.ErrStackOverflow)
		}

		e.name = desc.Name
		e.item = item
		e.value = fieldtype.NewItemValue(nil, item)

		return e.setState(StateStructBegin)
	}

	if desc.ArrayFlags != 0 {
		return e.beginArray(desc)
	}

	bytes, newCursor, err := readFieldBytes(e.data, e.cursor, e.dataEnd, desc.Encoding, e.reader)
	if err != nil {
		return e.fail(err)
	}

	e.cursor = newCursor

	item := fieldtype.NewItemType(desc.Encoding, desc.Format, desc.Tag, false, 1, e.reader)
	e.name = desc.Name
	e.item = item
	e.value = fieldtype.NewItemValue(bytes, item)

	return e.setState(StateValue)
}

// beginArray pushes an array frame for desc (CArray count from metadata, or
// VArray count read from the payload) and emits ArrayBegin.
func (e *Enumerator) beginArray(desc eventheader.FieldDescriptor) State {
	var count int

	if fieldtype.IsCArray(desc.ArrayFlags) {
		count = int(desc.CArrayCount)
	} else {
		n, newCursor, err := readVArrayCount(e.data, e.cursor, e.dataEnd, e.reader)
		if err != nil {
			return e.fail(err)
		}

		count = n
		e.cursor = newCursor
	}

	item := fieldtype.NewItemType(desc.Encoding, desc.Format, desc.Tag, true, count, e.reader)

	if !e.ctx.push(frame{
		kind:         frameArray,
		name:         desc.Name,
		elemDesc:     desc,
		elementIndex: 0,
		elementCount: count,
		itemType:     item,
	}) {
		return e.fail(errs.ErrStackOverflow)
	}

	e.name = desc.Name
	e.item = item
	e.value = fieldtype.NewItemValue(nil, item)

	return e.setState(StateArrayBegin)
}

// advanceArray emits the next array element, or ArrayEnd (popping the array
// frame) once elementIndex reaches elementCount.
func (e *Enumerator) advanceArray() State {
	top := e.ctx.top()

	if top.elementIndex >= top.elementCount {
		popped := e.ctx.pop()

		return e.emitArrayEnd(popped)
	}

	bytes, newCursor, err := readFieldBytes(e.data, e.cursor, e.dataEnd, top.elemDesc.Encoding, e.reader)
	if err != nil {
		return e.fail(err)
	}

	e.cursor = newCursor
	top.elementIndex++

	item := fieldtype.NewItemType(top.elemDesc.Encoding, top.elemDesc.Format, top.elemDesc.Tag, true, 1, e.reader)
	e.name = top.elemDesc.Name
	e.item = item
	e.value = fieldtype.NewItemValue(bytes, item)

	return e.setState(StateArrayValue)
}

func (e *Enumerator) emitArrayEnd(f frame) State {
	e.name = f.name
	e.item = f.itemType
	e.value = fieldtype.NewItemValue(nil, f.itemType)

	return e.setState(StateArrayEnd)
}

func (e *Enumerator) emitStructEnd(f frame) State {
	e.name = f.name
	e.item = f.itemType
	e.value = fieldtype.NewItemValue(nil, f.itemType)

	return e.setState(StateStructEnd)
}

func (e *Enumerator) setState(s State) State {
	e.state = s
	e.err = nil

	return s
}

func (e *Enumerator) fail(err error) State {
	e.state = StateError
	e.err = err

	return e.state
}

// bytesToString performs a zero-allocation conversion for borrowed, never
// retained-past-next-MoveNext byte slices.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}
