package runner

import (
	"context"
	"net"
	"time"

	libnet "respfuzz/pkg/net"
)

// Dialer opens connections to the target server.
type Dialer interface {
	Dial(ctx context.Context) (net.Conn, error)
	Addr() string
}

// TCPDialer dials addr over TCP. Every Read and Write of the returned
// connection carries its own deadline.
type TCPDialer struct {
	Address      string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Dial implements Dialer.
func (d *TCPDialer) Dial(ctx context.Context) (net.Conn, error) {
	return libnet.DialWithTimeout(ctx, d.Address, d.DialTimeout, d.ReadTimeout, d.WriteTimeout)
}

// Addr implements Dialer.
func (d *TCPDialer) Addr() string {
	return d.Address
}

// DialerFunc adapts a function to Dialer.
type DialerFunc func(ctx context.Context) (net.Conn, error)

// Dial implements Dialer.
func (f DialerFunc) Dial(ctx context.Context) (net.Conn, error) {
	return f(ctx)
}

// Addr implements Dialer.
func (f DialerFunc) Addr() string {
	return ""
}
