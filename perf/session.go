package perf

import (
	"fmt"

	"github.com/arloliu/eventheader/decode"
)

// Record is one perf sample: the sample id used to resolve its EventDesc,
// raw bytes as read from the section (possibly still compressed), and
// whether the owning section was compressed.
type Record struct {
	SampleID   uint64
	Payload    []byte
	Compressed bool
}

// Session ties a compression codec and an EventDescTable to a reusable
// decode.Context, giving a caller (e.g. cmd/eventheader-dump) the minimum
// plumbing needed to turn perf sample records into decoded items: resolve
// the record's provider/tracepoint, decompress its payload if needed, and
// hand the plain bytes to an Enumerator.
//
// Session is not safe for concurrent use; callers decoding multiple
// streams concurrently should use one Session per goroutine.
type Session struct {
	codec Codec
	descs *EventDescTable
	ctx   *decode.Context
}

// NewSession constructs a Session. codec decompresses HEADER_COMPRESSED
// section payloads (perf.NewNoOpCodec() if the session has none); ctx is
// the enumerator context this session's decoded events replay against
// (nil creates a default one).
func NewSession(codec Codec, ctx *decode.Context) *Session {
	if ctx == nil {
		ctx = decode.NewContext()
	}

	return &Session{codec: codec, descs: NewEventDescTable(), ctx: ctx}
}

// EventDescs returns the session's event descriptor table, for callers to
// populate from a PERF_HEADER_EVENT_DESC section or tracefs format dump.
func (s *Session) EventDescs() *EventDescTable { return s.descs }

// Context returns the session's decode.Context.
func (s *Session) Context() *decode.Context { return s.ctx }

// Payload returns rec's decompressed bytes, applying the session's codec
// only when rec.Compressed is set.
func (s *Session) Payload(rec Record) ([]byte, error) {
	if !rec.Compressed {
		return rec.Payload, nil
	}

	decompressed, err := s.codec.Decompress(rec.Payload)
	if err != nil {
		return nil, fmt.Errorf("perf: decompress sample %d: %w", rec.SampleID, err)
	}

	return decompressed, nil
}

// Desc resolves rec's EventDesc, reporting ok=false if the session has no
// descriptor registered for rec.SampleID yet.
func (s *Session) Desc(rec Record) (EventDesc, bool) {
	return s.descs.Lookup(rec.SampleID)
}
