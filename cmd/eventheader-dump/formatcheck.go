package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/eventheader/errs"
	"github.com/arloliu/eventheader/tracefs"
)

var formatCheckSystem string

var formatCheckCmd = &cobra.Command{
	Use:   "format-check file",
	Short: "Parse a tracefs format file and verify its text round-trips byte-for-byte",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormatCheck,
}

func init() {
	formatCheckCmd.Flags().StringVar(&formatCheckSystem, "system", "", "tracefs <sys> path component this format file belongs to")
}

func runFormatCheck(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	text := string(raw)

	format, err := tracefs.ParseFormat(formatCheckSystem, text)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s: %s (ID %d), %d fields\n", args[0], format.Name, format.ID, len(format.Fields))

	if format.WriteTo() != text {
		return fmt.Errorf("%s: parsed form does not reproduce the input byte-for-byte: %w", args[0], errs.ErrRoundTripMismatch)
	}

	fmt.Fprintf(out, "%s: round-trip OK\n", args[0])

	return nil
}
