// Package perf is the minimal perf.data-adjacent plumbing layer that gives
// the decoder core (decode.Enumerator) a real caller: a compressed-section
// codec registry and a small per-sample-id event descriptor table.
//
// This is deliberately not a perf.data file reader. Seeking, the section
// index, feature headers, and pipe-vs-seek mode are out of scope (per the
// decoder core's own stated non-goals); this package only covers the two
// pieces a caller needs to turn one perf sample record into bytes the
// enumerator can walk: decompressing a record's payload if the session
// negotiated a compressed-section feature, and resolving which
// provider/tracepoint produced a given sample id.
package perf
