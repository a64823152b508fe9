// Package eventheader parses the wire format of a Linux user_events
// EventHeader tracepoint: the 8-byte preamble, its chain of extension blocks,
// and the Metadata extension's NUL-terminated, typed-tag field schema.
//
// This package is purely positional: it has no notion of nesting or
// traversal order. The decode package's Enumerator drives a MetadataScanner
// from here to walk a payload's field schema and handles Struct descent by
// pushing its own stack frames.
package eventheader
