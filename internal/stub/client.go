package stub

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"
)

// Client is a minimal peer for exercising a running stub.
type Client struct {
	conn net.Conn
}

func Dial(ctx context.Context, addr string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Send(data []byte) error {
	if _, err := c.conn.Write(data); err != nil {
		return fmt.Errorf("failed to send data: %w", err)
	}
	return nil
}

// Receive reads exactly n bytes, giving up at the ctx deadline if it has one.
func (c *Client) Receive(ctx context.Context, n int) ([]byte, error) {
	deadline, _ := ctx.Deadline()
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	defer c.conn.SetReadDeadline(time.Time{})

	buf := make([]byte, n)
	if _, err := io.ReadFull(c.conn, buf); err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return buf, nil
}

func (c *Client) Exchange(ctx context.Context, data []byte, n int) ([]byte, error) {
	if err := c.Send(data); err != nil {
		return nil, err
	}
	return c.Receive(ctx, n)
}

// CloseWrite half-closes the connection so the server sees EOF.
func (c *Client) CloseWrite() error {
	if tcp, ok := c.conn.(*net.TCPConn); ok {
		return tcp.CloseWrite()
	}
	return c.conn.Close()
}

// Drain reads until the server closes the connection and returns what it got.
func (c *Client) Drain(ctx context.Context) ([]byte, error) {
	deadline, _ := ctx.Deadline()
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	return io.ReadAll(c.conn)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
