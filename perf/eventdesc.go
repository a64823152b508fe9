package perf

import "github.com/arloliu/eventheader/tracefs"

// EventDesc is the information shared by every perf sample record that
// carries a given sample id: which provider/tracepoint produced it, and
// (for the tracefs format family) its parsed schema.
//
// Grounded on tracepoint_decode's PerfEventDesc: a session resolves a
// sample's id to one of these once per id, not once per sample, avoiding
// repeated name/format lookups on the hot path.
type EventDesc struct {
	Name   string // e.g. "sched:sched_switch", or a user_events provider:tracepoint pair
	Format *tracefs.Format
}

// eventDescName derives a descriptor's display name from its Format when
// Name was not supplied directly (mirrors PerfEventDesc::update_name).
func eventDescName(name string, format *tracefs.Format) string {
	if name != "" || format == nil {
		return name
	}

	return format.SystemName + ":" + format.Name
}

// NewEventDesc constructs an EventDesc, deriving Name from format when
// name is empty.
func NewEventDesc(name string, format *tracefs.Format) EventDesc {
	return EventDesc{Name: eventDescName(name, format), Format: format}
}

// EventDescTable maps a perf sample id to the EventDesc shared by every
// record carrying that id, resolved once when the session first sees the
// id (typically from a PERF_HEADER_EVENT_DESC section or sibling
// PERF_RECORD_HEADER_TRACING_DATA format dump).
type EventDescTable struct {
	byID map[uint64]EventDesc
}

// NewEventDescTable returns an empty table.
func NewEventDescTable() *EventDescTable {
	return &EventDescTable{byID: make(map[uint64]EventDesc)}
}

// Set records (or replaces) the descriptor for id.
func (t *EventDescTable) Set(id uint64, desc EventDesc) {
	t.byID[id] = desc
}

// Lookup returns the descriptor registered for id, if any.
func (t *EventDescTable) Lookup(id uint64) (EventDesc, bool) {
	desc, ok := t.byID[id]

	return desc, ok
}

// Len reports how many sample ids currently have a registered descriptor.
func (t *EventDescTable) Len() int { return len(t.byID) }
