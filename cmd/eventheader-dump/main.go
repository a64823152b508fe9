// Command eventheader-dump decodes raw EventHeader event buffers and
// tracefs format files from the command line, exercising the decode,
// textwriter, and tracefs packages end to end the way a real consumer
// would.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eventheader-dump",
	Short: "eventheader-dump decodes EventHeader event buffers and tracefs format files",
	Long:  "eventheader-dump decodes EventHeader event buffers and tracefs format files",
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(formatCheckCmd)
}
