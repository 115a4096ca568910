package cli

import (
	"github.com/jlkiri/tcpstub/cmd/dump"
	"github.com/jlkiri/tcpstub/cmd/probe"
	"github.com/jlkiri/tcpstub/cmd/serve"
	"github.com/spf13/cobra"
)

func AddCommands(cmd *cobra.Command) {
	cmd.AddCommand(serve.NewServeCommand())
	cmd.AddCommand(probe.NewProbeCommand())
	cmd.AddCommand(dump.NewDumpCommand())
}
