// Package textwriter converts decoded fieldtype.ItemValue payloads into
// text, the consumer side of spec.md's item-iterator contract.
//
// Two string-writing strategies exist for Latin-1 byte strings
// (ZStringChar8/StringLength16Char8's String8 format): WriteLatin1 expands
// every byte one at a time, and WriteLatin1Fast writes each run of ASCII
// bytes in one call (it is valid UTF-8 as-is) and expands only the bytes
// ≥ 0x80 one at a time. Both produce
// byte-identical output; the choice between them is a throughput decision,
// not a semantic one, mirroring the two-strategy string writer in
// eventheader_decode's perf_item/perf_convert machinery.
//
// Writers append to a caller-supplied Sink rather than returning a new
// string, so a caller decoding many events can reuse one growable buffer
// across an entire enumeration without per-field allocation.
package textwriter
