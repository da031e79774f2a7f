package net

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"time"

	pkgerrs "github.com/pkg/errors"
)

var (
	// ErrConnClosed error connection closed.
	ErrConnClosed = errors.New("connection is closed")
	// ConnectionCnt counts every Conn created in this process.
	ConnectionCnt int64
)

// Conn is a net.Conn self implement
// Add auto timeout setting.
type Conn struct {
	net.Conn

	readTimeout  time.Duration
	writeTimeout time.Duration
	ID           int64

	closed bool
}

// DialWithTimeout will create new auto timeout Conn.
// The dial itself is bounded by both ctx and dialTimeout.
func DialWithTimeout(ctx context.Context, addr string, dialTimeout, readTimeout, writeTimeout time.Duration) (*Conn, error) {
	d := &net.Dialer{Timeout: dialTimeout}
	sock, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, pkgerrs.Wrapf(err, "dial %s", addr)
	}
	return NewConn(sock, readTimeout, writeTimeout), nil
}

// NewConn will create new Connection with given socket
func NewConn(sock net.Conn, readTimeout, writeTimeout time.Duration) (c *Conn) {
	var id = atomic.AddInt64(&ConnectionCnt, 1)
	c = &Conn{Conn: sock, readTimeout: readTimeout, writeTimeout: writeTimeout, ID: id}
	return
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.closed || c.Conn == nil {
		return 0, ErrConnClosed
	}
	if timeout := c.readTimeout; timeout != 0 {
		if err = c.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return
		}
	}
	n, err = c.Conn.Read(b)
	return
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.closed || c.Conn == nil {
		return 0, ErrConnClosed
	}
	if timeout := c.writeTimeout; timeout != 0 {
		if err = c.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return
		}
	}
	n, err = c.Conn.Write(b)
	return
}

// Close close conn.
func (c *Conn) Close() error {
	if c.Conn != nil && !c.closed {
		c.closed = true
		return c.Conn.Close()
	}
	return nil
}

// Writev impl the net.buffersWriter to support writev
func (c *Conn) Writev(buf *net.Buffers) (int64, error) {
	if c.closed || c.Conn == nil {
		return 0, ErrConnClosed
	}
	if timeout := c.writeTimeout; timeout != 0 {
		if err := c.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return 0, err
		}
	}
	n, err := buf.WriteTo(c.Conn)
	return n, err
}

// IsTimeout reports whether err, or its cause, is a network timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(pkgerrs.Cause(err), &ne) {
		return ne.Timeout()
	}
	return false
}
