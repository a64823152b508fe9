package textwriter

// ConvertOptions controls how WriteItemText/WriteItemJSON render a value:
// string quoting, out-of-range Boolean values, and Time values. No option
// hides a null or empty value; every value passed in is written.
// The zero value is the package's default rendering.
type ConvertOptions uint32

const (
	// Space is not consulted by any writer: the writers render one element
	// per call and emit no array-element separators.
	Space ConvertOptions = 1 << iota
	// StringsQuote wraps string-valued output in double quotes.
	StringsQuote
	// BoolOutOfRangeAsString renders a Boolean value other than 0/1 as the
	// literal integer instead of "true"/"false".
	BoolOutOfRangeAsString
	// UnixTimeWithSeconds appends the raw Unix seconds count alongside a
	// Time value's formatted timestamp.
	UnixTimeWithSeconds
	// HideNulTerminatedLength is not consulted by any writer: no writer emits
	// a length field for a ZString value.
	HideNulTerminatedLength
)

// DefaultConvertOptions is the zero-value baseline: no quoting, no spacing,
// out-of-range booleans rendered as "true"/"false" by their integer value.
const DefaultConvertOptions ConvertOptions = 0

func (o ConvertOptions) has(bit ConvertOptions) bool { return o&bit != 0 }

// MetaOptions selects which schema facets WriteFieldMeta writes alongside
// a field's value when a caller assembles the JSON object form.
type MetaOptions uint32

const (
	// MetaName includes the field's Name.
	MetaName MetaOptions = 1 << iota
	// MetaFieldTag includes the field's FieldTag (omitted when 0).
	MetaFieldTag
	// MetaEncoding includes the field's FieldEncoding, as its String().
	MetaEncoding
	// MetaFormat includes the field's FieldFormat, as its String().
	MetaFormat
)

// DefaultMetaOptions includes just the field name, the common case for a
// human-facing JSON dump.
const DefaultMetaOptions = MetaName

func (o MetaOptions) has(bit MetaOptions) bool { return o&bit != 0 }
