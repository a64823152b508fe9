package decode

// State is the enumerator's current position in an event's field traversal.
type State uint8

const (
	// StateNone is the zero value: no event is bound yet.
	StateNone State = iota
	// StateBeforeFirstItem means StartEvent succeeded but MoveNext has not
	// been called yet; no item is available.
	StateBeforeFirstItem
	// StateValue means the cursor is at a scalar (non-array) field.
	StateValue
	// StateStructBegin means the cursor is at the start of a Struct field;
	// Name/ItemType describe the struct itself, ItemValue.Bytes is empty.
	StateStructBegin
	// StateStructEnd means all of a Struct's sub-fields have been visited.
	StateStructEnd
	// StateArrayBegin means the cursor is at the start of an array field;
	// ItemType.ElementCount is the array's total length, ItemValue.Bytes is
	// empty.
	StateArrayBegin
	// StateArrayEnd means all of an array's elements have been visited.
	StateArrayEnd
	// StateArrayValue means the cursor is at one element of an array.
	StateArrayValue
	// StateAfterLastItem means the event's field list is exhausted; no item
	// is available. Terminal: further MoveNext calls are no-ops.
	StateAfterLastItem
	// StateError means decoding failed; Err() describes why. Terminal:
	// further MoveNext calls are no-ops.
	StateError
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateBeforeFirstItem:
		return "BeforeFirstItem"
	case StateValue:
		return "Value"
	case StateStructBegin:
		return "StructBegin"
	case StateStructEnd:
		return "StructEnd"
	case StateArrayBegin:
		return "ArrayBegin"
	case StateArrayEnd:
		return "ArrayEnd"
	case StateArrayValue:
		return "ArrayValue"
	case StateAfterLastItem:
		return "AfterLastItem"
	case StateError:
		return "Error"
	default:
		return "State(?)"
	}
}

// terminal reports whether s accepts no further MoveNext transitions.
func (s State) terminal() bool {
	return s == StateAfterLastItem || s == StateError || s == StateNone
}
