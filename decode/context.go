package decode

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/eventheader/eventheader"
)

// DefaultMaxDepth is the field-stack depth used when NewContext is called
// with no WithMaxDepth option. It comfortably exceeds realistic Struct
// nesting while keeping the stack's backing array small.
const DefaultMaxDepth = 16

// Option configures a Context at construction time.
type Option func(*Context)

// WithMaxDepth overrides the field-stack's depth limit. Exceeding it during
// enumeration yields a StackOverflow error. n must be at least 8.
func WithMaxDepth(n int) Option {
	return func(c *Context) {
		if n >= 8 {
			c.maxDepth = n
		}
	}
}

// WithSchemaCache opts a Context into caching the flattened field-descriptor
// list of each distinct Metadata extension payload it sees, keyed by the
// payload's xxhash. Repeated StartEvent calls against the same tracepoint
// (byte-identical metadata) then skip re-running MetadataScanner and instead
// index directly into the cached descriptor slice.
func WithSchemaCache() Option {
	return func(c *Context) {
		c.schemaCacheOn = true
		if c.schemaCache == nil {
			c.schemaCache = make(map[uint64][]eventheader.FieldDescriptor)
		}
	}
}

// Context owns the reusable field-frame stack an Enumerator traverses with,
// plus the optional schema cache. It is meant to be constructed once per
// decoding goroutine and reused across many StartEvent calls: re-entering
// StartEvent resets the stack rather than allocating a new one.
type Context struct {
	stack    []frame
	maxDepth int

	schemaCacheOn bool
	schemaCache   map[uint64][]eventheader.FieldDescriptor

	// qualifiedBuf is scratch space for building dotted struct field paths
	// (outer.inner.leaf) on request; reused across calls to avoid allocating
	// per lookup.
	qualifiedBuf []byte
}

// NewContext constructs a Context with its field stack pre-allocated to
// capacity so enumeration never grows it.
func NewContext(opts ...Option) *Context {
	c := &Context{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}

	c.stack = make([]frame, 0, c.maxDepth)

	return c
}

func (c *Context) reset() {
	c.stack = c.stack[:0]
}

// push appends f to the stack, reporting false (without modifying the stack)
// if doing so would exceed maxDepth.
func (c *Context) push(f frame) bool {
	if len(c.stack) >= c.maxDepth {
		return false
	}

	c.stack = append(c.stack, f)

	return true
}

// pop removes and returns the top frame. The caller must ensure the stack is
// non-empty.
func (c *Context) pop() frame {
	n := len(c.stack) - 1
	f := c.stack[n]
	c.stack = c.stack[:n]

	return f
}

// top returns a pointer to the top frame for in-place mutation. The caller
// must ensure the stack is non-empty.
func (c *Context) top() *frame {
	return &c.stack[len(c.stack)-1]
}

func (c *Context) depth() int { return len(c.stack) }

func (c *Context) empty() bool { return len(c.stack) == 0 }

// lookupSchema returns the cached descriptor list for metadata, if schema
// caching is enabled and a prior call has already scanned byte-identical
// metadata.
func (c *Context) lookupSchema(metadata []byte) ([]eventheader.FieldDescriptor, uint64, bool) {
	if !c.schemaCacheOn {
		return nil, 0, false
	}

	key := xxhash.Sum64(metadata)
	fields, ok := c.schemaCache[key]

	return fields, key, ok
}

// storeSchema records fields under key for future lookupSchema hits. No-op
// if schema caching is disabled.
func (c *Context) storeSchema(key uint64, fields []eventheader.FieldDescriptor) {
	if !c.schemaCacheOn {
		return
	}

	c.schemaCache[key] = fields
}
