package stub

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/jlkiri/tcpstub/internal/payload"
	"github.com/jlkiri/tcpstub/sources"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/semaphore"
)

func NewServer(config Config, p payload.Payload) *Server {
	if config.ReadBufferSize <= 0 {
		config.ReadBufferSize = sources.DefaultReadBufferSize
	}

	s := &Server{config: config, payload: p}
	if config.MaxConns > 0 {
		s.sem = semaphore.NewWeighted(config.MaxConns)
	}
	return s
}

func (s *Server) State() State {
	return State(s.state.Load())
}

func (s *Server) ActiveConnections() int64 {
	return s.active.Load()
}

// Listen binds the configured address with SO_REUSEADDR set.
func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	lc := net.ListenConfig{Control: reuseAddrControl}
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return lis, nil
}

func (s *Server) Start(ctx context.Context) error {
	lis, err := s.Listen(ctx)
	if err != nil {
		s.state.Store(int32(Stopped))
		return err
	}

	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is cancelled or Accept fails.
// Handlers are never waited on. The listener is closed when Serve returns.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.state.Store(int32(Listening))
	defer s.state.Store(int32(Stopped))

	addr := s.boundAddr(lis)
	slog.Info("Server listening", "addr", addr)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		if err := lis.Close(); err != nil && ctx.Err() == nil {
			slog.Error("Failed to close listener", "addr", addr, "err", err)
		}
	}()

	for {
		if s.sem != nil {
			if err := s.sem.Acquire(ctx, 1); err != nil {
				slog.Info("Server stopped accepting", "addr", addr)
				return nil
			}
		}

		conn, err := lis.Accept()
		if err != nil {
			s.release()
			if ctx.Err() != nil {
				slog.Info("Server stopped accepting", "addr", addr)
				return nil
			}
			return fmt.Errorf("failed to accept connection on %s: %w", addr, err)
		}

		s.active.Add(1)
		go s.handleConnection(conn)
	}
}

// boundAddr reports the configured host with the port the listener got. A
// wildcard IPv4 host would otherwise show up as the dual-stack [::].
func (s *Server) boundAddr(lis net.Listener) string {
	tcpAddr, ok := lis.Addr().(*net.TCPAddr)
	if !ok || s.config.Host == "" {
		return lis.Addr().String()
	}
	return net.JoinHostPort(s.config.Host, strconv.Itoa(tcpAddr.Port))
}

func (s *Server) release() {
	if s.sem != nil {
		s.sem.Release(1)
	}
}
