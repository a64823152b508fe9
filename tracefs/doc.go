// Package tracefs parses the kernel tracepoint schema files exposed under
// /sys/kernel/tracing/events/<system>/<name>/format: the "other" event
// family, used by tracepoints that were not declared through EventHeader and
// so carry no inline Metadata extension.
//
// A format file looks like:
//
//	name: sched_switch
//	ID: 314
//	format:
//		field:unsigned short common_type;	offset:0;	size:2;	signed:0;
//		field:char prev_comm[16];	offset:8;	size:16;	signed:0;
//		field:pid_t prev_pid;	offset:24;	size:4;	signed:1;
//
//	print fmt: "prev_comm=%s prev_pid=%d" ...
//
// ParseFormat keeps each field's original line verbatim alongside its parsed
// FieldInfo, so WriteTo always reproduces the input byte-for-byte: this
// package does not attempt to re-derive kernel formatting conventions (tab
// placement, trailing semicolons) from structured data, it replays what it
// read. The structured FieldInfo is for querying only.
package tracefs
