package dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jlkiri/tcpstub/internal/payload"
	"github.com/spf13/cobra"
)

func NewDumpCommand() *cobra.Command {
	var payloadFile string

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the payload the stub would serve",
		Long:  `Print the payload the stub would serve`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := payload.LoadFrom(payloadFile)
			if err != nil {
				return err
			}
			return printPayload(cmd.OutOrStdout(), payloadFile, p)
		},
	}

	dumpCmd.Flags().StringVar(&payloadFile, "payload-file", os.Getenv("TCPSTUB_PAYLOAD_FILE"), "Hex file to inspect instead of the built-in reply")

	return dumpCmd
}

func printPayload(out io.Writer, source string, p payload.Payload) error {
	if source == "" {
		source = "built-in"
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{"SOURCE", "BYTES"}, "\t"))
	fmt.Fprintln(w, strings.Join([]string{source, strconv.Itoa(p.Len())}, "\t"))
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprint(out, "\n"+hex.Dump(p.Bytes()))
	return err
}
