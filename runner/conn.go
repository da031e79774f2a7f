package runner

import (
	"net"
	"sync/atomic"

	libnet "respfuzz/pkg/net"
	"respfuzz/proto/resp"
)

const (
	opened = uint32(0)
	closed = uint32(1)
)

// conn is one connection to the target, one request in flight at a time.
type conn struct {
	addr  string
	sock  net.Conn
	br    *resp.Reader
	bw    *resp.Writer
	state uint32
}

func newConn(addr string, sock net.Conn) *conn {
	return &conn{
		addr: addr,
		sock: sock,
		br:   resp.NewReader(sock),
		bw:   resp.NewWriter(sock),
	}
}

func (c *conn) write(argv []string) (err error) {
	if err = c.bw.WriteCommand(argv...); err != nil {
		return newTransportError("write", c.addr, err)
	}
	if err = c.bw.Flush(); err != nil {
		return newTransportError("write", c.addr, err)
	}
	return
}

func (c *conn) read() (resp.Value, error) {
	v, err := c.br.ReadValue()
	if err != nil && !resp.IsProtocolError(err) {
		return v, newTransportError("read", c.addr, err)
	}
	return v, err
}

// interrupt fails a pending read or write and every later one.
func (c *conn) interrupt() {
	if lc, ok := c.sock.(*libnet.Conn); ok && lc.Conn != nil {
		lc.Conn.Close()
		return
	}
	c.sock.Close()
}

func (c *conn) Close() (err error) {
	if atomic.CompareAndSwapUint32(&c.state, opened, closed) {
		err = c.sock.Close()
		c.br.Release()
	}
	return
}
