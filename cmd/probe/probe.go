package probe

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/jlkiri/tcpstub/internal/payload"
	"github.com/jlkiri/tcpstub/internal/stub"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func NewProbeCommand() *cobra.Command {
	var (
		addr        string
		data        string
		count       int
		timeout     time.Duration
		payloadFile string
	)

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Send data to a running stub and check its replies",
		Long: `Send data to a running stub and check that every reply matches the
expected payload byte for byte`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, err := payload.LoadFrom(payloadFile)
			if err != nil {
				return err
			}
			return runProbe(cmd.Context(), addr, []byte(data), count, timeout, expected)
		},
	}

	flags := probeCmd.Flags()
	flags.StringVarP(&addr, "addr", "a", "127.0.0.1:8080", "Address of the stub")
	flags.StringVarP(&data, "data", "d", "ping", "Data to send on each exchange")
	flags.IntVarP(&count, "count", "n", 1, "Number of exchanges")
	flags.DurationVar(&timeout, "timeout", 5*time.Second, "Deadline for the whole probe")
	flags.StringVar(&payloadFile, "payload-file", os.Getenv("TCPSTUB_PAYLOAD_FILE"), "Hex file with the expected reply")

	return probeCmd
}

func runProbe(ctx context.Context, addr string, data []byte, count int, timeout time.Duration, expected payload.Payload) error {
	if count < 1 {
		return fmt.Errorf("invalid count %d: at least one exchange is required", count)
	}
	if len(data) == 0 {
		return fmt.Errorf("nothing to send: the stub only replies to non-empty reads")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := stub.Dial(ctx, addr)
	if err != nil {
		return err
	}
	defer client.Close()

	// Raw bytes are only useful when piped somewhere.
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	for i := 1; i <= count; i++ {
		reply, err := client.Exchange(ctx, data, expected.Len())
		if err != nil {
			return fmt.Errorf("exchange %d: %w", i, err)
		}
		if !expected.Equal(reply) {
			return fmt.Errorf("exchange %d: reply does not match the expected payload", i)
		}

		if interactive {
			fmt.Printf("exchange %d: sent %d bytes, received %d bytes, payload matches\n", i, len(data), len(reply))
			fmt.Print(hex.Dump(reply))
			continue
		}
		if _, err := os.Stdout.Write(reply); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}
	}

	return nil
}
