package mockconn

import (
	"bytes"
	"io"
	"net"
	"sync/atomic"
	"time"
)

const (
	stateClosed  = 1
	stateOpening = 0
)

type mockAddr string

func (m mockAddr) Network() string {
	return "tcp"
}
func (m mockAddr) String() string {
	return string(m)
}

// MockConn mock tcp conn.
type MockConn struct {
	addr   mockAddr
	rbuf   *bytes.Buffer
	Wbuf   *bytes.Buffer
	data   []byte
	repeat int
	// Err is returned by every Read and Write once set.
	Err error
	// WriteErr fails writes only, reads keep serving data.
	WriteErr error
	closed   int32
}

func (m *MockConn) Read(b []byte) (n int, err error) {
	if atomic.LoadInt32(&m.closed) == stateClosed {
		return 0, io.EOF
	}
	if m.Err != nil {
		err = m.Err
		return
	}
	if m.repeat > 0 {
		m.rbuf.Write(m.data)
		m.repeat--
	}
	return m.rbuf.Read(b)
}

func (m *MockConn) Write(b []byte) (n int, err error) {
	if atomic.LoadInt32(&m.closed) == stateClosed {
		return 0, io.EOF
	}
	if m.Err != nil {
		err = m.Err
		return
	}
	if m.WriteErr != nil {
		err = m.WriteErr
		return
	}
	return m.Wbuf.Write(b)
}

// Close marks the conn closed, later calls see io.EOF.
func (m *MockConn) Close() error {
	atomic.StoreInt32(&m.closed, stateClosed)
	return nil
}

// IsClosed reports whether Close was called.
func (m *MockConn) IsClosed() bool {
	return atomic.LoadInt32(&m.closed) == stateClosed
}

// LocalAddr .
func (m *MockConn) LocalAddr() net.Addr { return m.addr }

// RemoteAddr .
func (m *MockConn) RemoteAddr() net.Addr { return m.addr }

// SetDeadline .
func (m *MockConn) SetDeadline(t time.Time) error { return nil }

// SetReadDeadline .
func (m *MockConn) SetReadDeadline(t time.Time) error { return nil }

// SetWriteDeadline .
func (m *MockConn) SetWriteDeadline(t time.Time) error { return nil }

// CreateConn with mock data repeate for r times.
func CreateConn(data []byte, r int) *MockConn {
	return &MockConn{
		addr:   "127.0.0.1:12345",
		rbuf:   bytes.NewBuffer(nil),
		Wbuf:   new(bytes.Buffer),
		data:   data,
		repeat: r,
	}
}

// CreateErrConn returns a conn failing every call with err.
func CreateErrConn(err error) *MockConn {
	m := CreateConn(nil, 0)
	m.Err = err
	return m
}
