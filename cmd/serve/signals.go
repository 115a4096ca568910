package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"
)

// installSignalHandlers blocks until an interrupt arrives or ctx is done.
// In-flight connections are not drained.
func installSignalHandlers(ctx context.Context, cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		slog.Info("Caught signal, shutting down", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}
}
