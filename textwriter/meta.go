package textwriter

import (
	"strconv"

	"github.com/arloliu/eventheader/fieldtype"
)

// WriteFieldMeta writes the schema facets metaOpts selects for one field as
// a sequence of comma-prefixed "key":value JSON members (no enclosing
// braces; the first member written is comma-prefixed too): a caller
// assembling a full field object writes '{' then the "value" member, calls
// WriteFieldMeta, then writes '}'.
func WriteFieldMeta(sink Sink, name string, t fieldtype.ItemType, metaOpts MetaOptions) error {
	if metaOpts.has(MetaName) {
		if _, err := sink.WriteString(",\"name\":"); err != nil {
			return err
		}

		if err := WriteFieldNameJSON(sink, name); err != nil {
			return err
		}
	}

	if metaOpts.has(MetaFieldTag) && t.FieldTag != 0 {
		if _, err := sink.WriteString(",\"tag\":"); err != nil {
			return err
		}

		if _, err := sink.WriteString(strconv.FormatUint(uint64(t.FieldTag), 10)); err != nil {
			return err
		}
	}

	if metaOpts.has(MetaEncoding) {
		if _, err := sink.WriteString(",\"encoding\":\""); err != nil {
			return err
		}

		if _, err := sink.WriteString(t.Encoding.String()); err != nil {
			return err
		}

		if err := sink.WriteByte('"'); err != nil {
			return err
		}
	}

	if metaOpts.has(MetaFormat) {
		if _, err := sink.WriteString(",\"format\":\""); err != nil {
			return err
		}

		if _, err := sink.WriteString(t.Format.String()); err != nil {
			return err
		}

		if err := sink.WriteByte('"'); err != nil {
			return err
		}
	}

	return nil
}
