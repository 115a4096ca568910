package main

import (
	"os"

	"github.com/jlkiri/tcpstub/cli"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cli.LogLevel,
	}))
	slog.SetDefault(logger)

	cli.Execute()
}
