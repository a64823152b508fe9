package textwriter

// Sink is the append-only destination every writer in this package targets.
// *strings.Builder and *bytes.Buffer both satisfy it, so callers can reuse
// one growable buffer across an entire enumeration.
type Sink interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

const hexDigits = "0123456789abcdef"
