package net

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAddr string

func (m mockAddr) Network() string {
	return "tcp"
}
func (m mockAddr) String() string {
	return string(m)
}

type mockConn struct {
	rbuf *bytes.Buffer
	wbuf *bytes.Buffer
	addr mockAddr
}

func (m *mockConn) Read(b []byte) (n int, err error) {
	return m.rbuf.Read(b)
}
func (m *mockConn) Write(b []byte) (n int, err error) {
	return m.wbuf.Write(b)
}

func (m *mockConn) Close() error         { return nil }
func (m *mockConn) LocalAddr() net.Addr  { return m.addr }
func (m *mockConn) RemoteAddr() net.Addr { return m.addr }

func (m *mockConn) SetDeadline(t time.Time) error      { return nil }
func (m *mockConn) SetReadDeadline(t time.Time) error  { return nil }
func (m *mockConn) SetWriteDeadline(t time.Time) error { return nil }

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestConnProxyImplConnAlwaysCallMock(t *testing.T) {
	mconn := &mockConn{addr: "127.0.0.1:12345"}
	conn := NewConn(mconn, time.Second, time.Second)
	assert.Nil(t, conn.SetDeadline(time.Now()))
	assert.Nil(t, conn.SetReadDeadline(time.Now()))
	assert.Nil(t, conn.SetWriteDeadline(time.Now()))
	assert.Nil(t, conn.Close())
	_, err := conn.Read(make([]byte, 1))
	assert.Equal(t, ErrConnClosed, err)
	assert.Equal(t, conn.LocalAddr(), conn.RemoteAddr())
}

func _testReadWriteWithMockTimeout(t *testing.T, rt, wt time.Duration) {
	data := []byte("*1\r\n$4\r\nPING\r\n")
	mconn := &mockConn{
		rbuf: bytes.NewBuffer(data),
		wbuf: new(bytes.Buffer),
	}
	conn := NewConn(mconn, rt, wt)

	recv := make([]byte, len(data))

	size, err := conn.Read(recv)
	assert.NoError(t, err)
	assert.Equal(t, len(data), size)
	assert.Equal(t, data, recv)

	size, err = conn.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, len(data), size)
	assert.Equal(t, data, mconn.wbuf.Bytes())
}

func TestConnProxyMockReadWriteOk(t *testing.T) {
	_testReadWriteWithMockTimeout(t, time.Second, time.Second)
}

func TestConnProxyMockReadWriteZero(t *testing.T) {
	_testReadWriteWithMockTimeout(t, 0, 0)
}

func TestConnDialAndWriteBuffersOk(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	got := make(chan int, 1)
	go func() {
		sock, err := l.Accept()
		if err != nil {
			return
		}
		defer sock.Close()
		buf := make([]byte, 1024)
		n, _ := sock.Read(buf)
		got <- n
	}()
	conn, err := DialWithTimeout(context.Background(), l.Addr().String(), time.Second, time.Second, time.Second)
	require.NoError(t, err)
	defer conn.Close()

	buffers := net.Buffers([][]byte{[]byte("baka"), []byte("qiu")})
	n, err := conn.Writev(&buffers)
	assert.NoError(t, err)
	assert.Equal(t, 7, int(n))
	select {
	case n := <-got:
		assert.NotZero(t, n)
	case <-time.After(2 * time.Second):
		t.Fatal("server never read")
	}
}

func TestConnDialRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	conn, err := DialWithTimeout(context.Background(), addr, 200*time.Millisecond, time.Second, time.Second)
	assert.Nil(t, conn)
	assert.Error(t, err)
	assert.False(t, IsTimeout(err))
}

func TestConnNoConn(t *testing.T) {
	conn := NewConn(nil, time.Second, time.Second)

	bs := make([]byte, 1)
	n, err := conn.Read(bs)
	assert.Equal(t, 0, n)
	assert.Equal(t, ErrConnClosed, err)

	n, err = conn.Write(bs)
	assert.Equal(t, 0, n)
	assert.Equal(t, ErrConnClosed, err)

	buffers := net.Buffers([][]byte{[]byte("baka"), []byte("qiu")})
	n64, err := conn.Writev(&buffers)
	assert.Equal(t, int64(0), n64)
	assert.Equal(t, ErrConnClosed, err)
}

func TestIsTimeout(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(errors.New("boom")))
	assert.True(t, IsTimeout(timeoutErr{}))
	assert.True(t, IsTimeout(errors.Wrap(timeoutErr{}, "read reply")))
	assert.True(t, IsTimeout(context.DeadlineExceeded))
}
