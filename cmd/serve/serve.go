package serve

import (
	"context"
	"fmt"

	"github.com/jlkiri/tcpstub/internal/config"
	"github.com/jlkiri/tcpstub/internal/payload"
	"github.com/jlkiri/tcpstub/internal/stub"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

func NewServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recorded reply over TCP",
		Long:  `Serve the recorded reply over TCP until interrupted`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), conf)
		},
	}

	defaults := config.Default()
	flags := serveCmd.Flags()
	flags.StringP("config", "c", "", "Path to a JSON config file")
	flags.String("host", defaults.Host, "Host to bind")
	flags.IntP("port", "p", defaults.Port, "Port to bind")
	flags.Int64("max-conns", defaults.MaxConns, "Maximum concurrent connections (0 for unbounded)")
	flags.Int("read-buffer", defaults.ReadBufferSize, "Bytes read per exchange")
	flags.String("payload-file", defaults.PayloadFile, "Hex file to serve instead of the built-in reply")

	return serveCmd
}

// loadConfig starts from the config file, if any, and applies the flags the
// user set explicitly on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	conf := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		conf, err = config.Read(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags.Changed("host") {
		conf.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		conf.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("max-conns") {
		conf.MaxConns, _ = flags.GetInt64("max-conns")
	}
	if flags.Changed("read-buffer") {
		conf.ReadBufferSize, _ = flags.GetInt("read-buffer")
	}
	if flags.Changed("payload-file") {
		conf.PayloadFile, _ = flags.GetString("payload-file")
	}

	if err := conf.Validate(); err != nil {
		return config.Config{}, err
	}
	return conf, nil
}

func runServe(ctx context.Context, conf config.Config) error {
	p, err := payload.LoadFrom(conf.PayloadFile)
	if err != nil {
		return err
	}
	slog.Debug("Loaded payload", "bytes", p.Len(), "file", conf.PayloadFile)

	server := stub.NewServer(stub.Config{
		Host:           conf.Host,
		Port:           conf.Port,
		MaxConns:       conf.MaxConns,
		ReadBufferSize: conf.ReadBufferSize,
	}, p)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return server.Start(ctx)
	})
	eg.Go(func() error {
		installSignalHandlers(ctx, cancel)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	slog.Info("Server shut down")
	return nil
}
