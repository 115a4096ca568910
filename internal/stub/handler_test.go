package stub

import (
	"context"
	"io"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedConn plays back reads and records what the handler does to it.
type scriptedConn struct {
	net.Conn

	reads       [][]byte
	readErr     error
	panicOnRead bool
	writeErr    error

	readCalls int
	written   [][]byte
	closes    int
}

func (c *scriptedConn) Read(b []byte) (int, error) {
	c.readCalls++
	if c.panicOnRead {
		panic("read exploded")
	}
	if len(c.reads) > 0 {
		n := copy(b, c.reads[0])
		c.reads = c.reads[1:]
		return n, nil
	}
	return 0, c.readErr
}

func (c *scriptedConn) Write(b []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	c.written = append(c.written, append([]byte(nil), b...))
	return len(b), nil
}

func (c *scriptedConn) Close() error {
	c.closes++
	return nil
}

func (c *scriptedConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}
}

func TestHandlerExitPaths(t *testing.T) {
	p := loadFixture(t)

	tests := []struct {
		name          string
		conn          *scriptedConn
		expectedReads int
		expectedReply int
	}{
		{
			name:          "EOF After Two Reads",
			conn:          &scriptedConn{reads: [][]byte{[]byte("one"), []byte("two")}, readErr: io.EOF},
			expectedReads: 3,
			expectedReply: 2,
		},
		{
			name:          "Write Error",
			conn:          &scriptedConn{reads: [][]byte{[]byte("hello")}, writeErr: syscall.EPIPE},
			expectedReads: 1,
			expectedReply: 0,
		},
		{
			name:          "Read Error",
			conn:          &scriptedConn{readErr: syscall.ECONNRESET},
			expectedReads: 1,
			expectedReply: 0,
		},
		{
			name:          "Read Error After Exchange",
			conn:          &scriptedConn{reads: [][]byte{[]byte("hi")}, readErr: syscall.ECONNRESET},
			expectedReads: 2,
			expectedReply: 1,
		},
		{
			name:          "Panic On Read",
			conn:          &scriptedConn{panicOnRead: true},
			expectedReads: 1,
			expectedReply: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(Config{MaxConns: 1}, p)
			require.True(t, s.sem.TryAcquire(1))
			s.active.Add(1)

			assert.NotPanics(t, func() { s.handleConnection(tt.conn) })

			assert.Equal(t, 1, tt.conn.closes, "Connection must be closed exactly once")
			assert.Equal(t, tt.expectedReads, tt.conn.readCalls)
			require.Len(t, tt.conn.written, tt.expectedReply)
			for _, reply := range tt.conn.written {
				assert.True(t, p.Equal(reply))
			}
			assert.Equal(t, int64(0), s.ActiveConnections())
			assert.True(t, s.sem.TryAcquire(1), "Connection slot was not released")
		})
	}
}

func TestResetConnectionIsIsolated(t *testing.T) {
	p := loadFixture(t)
	s, addr, _ := startServer(t, Config{}, p)

	survivor := dial(t, addr)
	exchange(t, survivor, []byte("before"), p.Len())

	reset := dial(t, addr)
	exchange(t, reset, []byte("hello"), p.Len())

	// A zero linger turns Close into a RST, so the handler hits a read or
	// write error instead of a clean EOF.
	tcp, ok := reset.conn.(*net.TCPConn)
	require.True(t, ok)
	require.NoError(t, tcp.SetLinger(0))
	require.NoError(t, reset.Send([]byte("keep talking")))
	require.NoError(t, reset.Send([]byte("and talking")))
	require.NoError(t, reset.Close())

	assert.Eventually(t, func() bool { return s.ActiveConnections() == 1 },
		testTimeout, 10*time.Millisecond, "Reset handler did not exit")

	reply := exchange(t, survivor, []byte("after"), p.Len())
	assert.True(t, p.Equal(reply), "Existing connection was disturbed")

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	late, err := Dial(ctx, addr)
	require.NoError(t, err)
	defer late.Close()
	for i := 0; i < 3; i++ {
		reply, err := late.Exchange(ctx, []byte("new"), p.Len())
		require.NoError(t, err)
		assert.True(t, p.Equal(reply), "Acceptor stopped serving full payloads")
	}
}
