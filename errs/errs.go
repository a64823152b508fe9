// Package errs defines the sentinel errors returned by the decode, eventheader,
// and tracefs packages.
//
// Callers should compare against these with errors.Is; wrapped context (offsets,
// field names) is added with fmt.Errorf("...: %w", ...) around the sentinel.
package errs

import "errors"

var (
	// ErrNotSupported is returned when the decoder encounters a feature flag
	// or base encoding it does not implement.
	ErrNotSupported = errors.New("eventheader: not supported")

	// ErrInvalidData is returned when the payload is truncated, metadata is
	// malformed, a string is not terminated, or an array length overflows the
	// remaining bytes.
	ErrInvalidData = errors.New("eventheader: invalid data")

	// ErrHeaderExtensionMissing is returned when the EventHeader Extension flag
	// is not set, or no Metadata extension block is present.
	ErrHeaderExtensionMissing = errors.New("eventheader: header extension missing")

	// ErrStackOverflow is returned when struct/array nesting exceeds the decode
	// Context's depth limit (DefaultMaxDepth, or the value given to WithMaxDepth).
	ErrStackOverflow = errors.New("eventheader: stack overflow")

	// ErrInvalidHeaderSize names a fixed-size header section that does not
	// match its expected byte length. No function in this module returns it;
	// a truncated header is reported as ErrInvalidData.
	ErrInvalidHeaderSize = errors.New("eventheader: invalid header size")

	// ErrRoundTripMismatch is returned by tracefs format-file re-serialization
	// checks when the round-tripped text does not match the input exactly.
	ErrRoundTripMismatch = errors.New("tracefs: round-trip mismatch")
)
