package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/eventheader/decode"
	"github.com/arloliu/eventheader/textwriter"
)

var (
	dumpProvider   string
	dumpOptions    string
	dumpTracepoint string
	dumpJSON       bool
	dumpMetaFacets string
	dumpShowStats  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump file",
	Short: "Decode one raw EventHeader event buffer and print its fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpProvider, "provider", "", "provider name the event was logged under")
	dumpCmd.Flags().StringVar(&dumpOptions, "options", "", "provider options suffix (rare; usually empty)")
	dumpCmd.Flags().StringVar(&dumpTracepoint, "tracepoint", "", "user_events tracepoint name")
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "print fields as a JSON array of field objects instead of text lines")
	dumpCmd.Flags().StringVar(&dumpMetaFacets, "meta", "name", "comma-separated JSON meta facets: name,tag,encoding,format (--json only)")
	dumpCmd.Flags().BoolVar(&dumpShowStats, "stat", false, "print a byte-count summary line to stderr")

	_ = dumpCmd.MarkFlagRequired("tracepoint")
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if dumpShowStats {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], humanize.Bytes(uint64(len(data))))
	}

	ctx := decode.NewContext()
	enum := decode.NewEnumerator(ctx)

	if state := enum.StartEvent(dumpProvider, dumpOptions, dumpTracepoint, data); state == decode.StateError {
		return fmt.Errorf("starting event: %w", enum.Err())
	}

	metaOpts := parseMetaOptions(dumpMetaFacets)

	var sb strings.Builder
	if dumpJSON {
		if err := writeEventJSON(&sb, enum, metaOpts); err != nil {
			return err
		}
	} else {
		if err := writeEventText(&sb, enum); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), sb.String())

	return nil
}

func parseMetaOptions(facets string) textwriter.MetaOptions {
	var opts textwriter.MetaOptions

	for _, facet := range strings.Split(facets, ",") {
		switch strings.TrimSpace(facet) {
		case "name":
			opts |= textwriter.MetaName
		case "tag":
			opts |= textwriter.MetaFieldTag
		case "encoding":
			opts |= textwriter.MetaEncoding
		case "format":
			opts |= textwriter.MetaFormat
		}
	}

	return opts
}

// writeEventText renders every Value/ArrayValue item as "name = value\n".
func writeEventText(sink *strings.Builder, enum *decode.Enumerator) error {
	for enum.MoveNext() != decode.StateAfterLastItem {
		switch enum.State() {
		case decode.StateValue, decode.StateArrayValue:
			if _, err := sink.WriteString(enum.Name()); err != nil {
				return err
			}

			if _, err := sink.WriteString(" = "); err != nil {
				return err
			}

			if err := textwriter.WriteItemText(sink, enum.ItemValue(), textwriter.DefaultConvertOptions); err != nil {
				return err
			}

			if err := sink.WriteByte('\n'); err != nil {
				return err
			}
		case decode.StateError:
			return fmt.Errorf("decoding %s: %w", enum.QualifiedName(), enum.Err())
		}
	}

	return nil
}

// writeEventJSON renders the event as a JSON array of field objects, each
// holding the item's value plus whichever schema facets metaOpts selects
// (name/tag/encoding/format).
func writeEventJSON(sink *strings.Builder, enum *decode.Enumerator, metaOpts textwriter.MetaOptions) error {
	if err := sink.WriteByte('['); err != nil {
		return err
	}

	first := true

	for enum.MoveNext() != decode.StateAfterLastItem {
		switch enum.State() {
		case decode.StateValue, decode.StateArrayValue:
			if !first {
				if _, err := sink.WriteString(","); err != nil {
					return err
				}
			}

			first = false

			item := enum.ItemValue()

			if _, err := sink.WriteString(`{"value":`); err != nil {
				return err
			}

			if err := textwriter.WriteItemJSON(sink, item, textwriter.DefaultConvertOptions); err != nil {
				return err
			}

			if err := textwriter.WriteFieldMeta(sink, enum.QualifiedName(), item.Type, metaOpts); err != nil {
				return err
			}

			if _, err := sink.WriteString("}"); err != nil {
				return err
			}
		case decode.StateError:
			return fmt.Errorf("decoding %s: %w", enum.QualifiedName(), enum.Err())
		}
	}

	return sink.WriteByte(']')
}
