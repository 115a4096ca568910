package stub

import (
	"errors"
	"io"
	"net"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// handleConnection owns conn until it returns. Failures stay local to this
// connection.
func (s *Server) handleConnection(conn net.Conn) {
	logger := slog.With("conn", uuid.NewString(), "remote", conn.RemoteAddr().String())
	exchanges := 0

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in connection handler", "panic", r)
		}
		if err := conn.Close(); err != nil {
			logger.Error("Failed to close connection", "err", err)
		}
		s.active.Add(-1)
		s.release()
		logger.Info("Connection closed", "exchanges", exchanges)
	}()

	logger.Info("Connection accepted")

	buf := make([]byte, s.config.ReadBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			logger.Debug("Received data", "bytes", n)

			written, werr := s.payload.WriteTo(conn)
			if werr != nil {
				logger.Error("Failed to write response", "bytes", written, "err", werr)
				return
			}
			exchanges++
			logger.Debug("Sent response", "bytes", written)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("Peer finished sending")
			} else {
				logger.Error("Failed to read from connection", "err", err)
			}
			return
		}
	}
}
