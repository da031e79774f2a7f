package bufio

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	libnet "respfuzz/pkg/net"

	"github.com/stretchr/testify/assert"
)

func _genData() []byte {
	bts := bytes.Repeat([]byte("abcde"), 3*100)
	bts[len(bts)-1] = 'f'
	return bts
}

func TestReaderAdvance(t *testing.T) {
	bts := _genData()

	b := NewReader(bytes.NewBuffer(bts), Get(defaultBufferSize))
	assert.NoError(t, b.Read())
	b.Advance(10)

	buf := b.Buffer()
	assert.NotNil(t, buf)
	assert.Len(t, buf.Bytes(), 502)
	b.Advance(-10)
	assert.Len(t, buf.Bytes(), 512)
}

func TestReaderReadGrows(t *testing.T) {
	bts := _genData()

	b := NewReader(bytes.NewBuffer(bts), Get(defaultBufferSize))
	for b.Buffer().buffered() < len(bts) {
		if !assert.NoError(t, b.Read()) {
			return
		}
	}
	assert.Equal(t, bts, b.Buffer().Bytes())
	// EOF with unconsumed bytes is deferred to the next call.
	assert.NoError(t, b.Read())
	assert.Equal(t, io.EOF, b.Read())
}

func TestReaderReadStickyErr(t *testing.T) {
	b := NewReader(bytes.NewBuffer(_genData()), Get(defaultBufferSize))
	assert.NoError(t, b.Read())

	b.err = errors.New("some error")
	assert.EqualError(t, b.Read(), "some error")
	assert.EqualError(t, b.err, "some error")
}

func TestReaderEOFAfterData(t *testing.T) {
	b := NewReader(bytes.NewBufferString("+OK\r\n"), Get(defaultBufferSize))
	assert.NoError(t, b.Read())
	assert.Equal(t, []byte("+OK\r\n"), b.Buffer().Bytes())
	b.Advance(5)
	assert.Equal(t, io.EOF, b.Read())
}

func TestBufferPool(t *testing.T) {
	b := Get(1000)
	assert.Equal(t, 1024, b.len())
	Put(b)
	odd := NewBuffer(1000)
	Put(odd)
	assert.Equal(t, 1024, Get(1024).len())
}

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

func TestWriterWriteOk(t *testing.T) {
	data := "*1\r\n$4\r\nPING\r\n"

	mconn := &mockConn{addr: "127.0.0.1:12345", rbuf: new(bytes.Buffer), wbuf: new(bytes.Buffer)}
	w := NewWriter(libnet.NewConn(mconn, time.Second, time.Second))

	assert.NoError(t, w.Flush())
	assert.NoError(t, w.Write([]byte(data)))
	assert.NoError(t, w.Write([]byte(data)))
	assert.NoError(t, w.Flush())
	assert.Equal(t, data+data, mconn.wbuf.String())

	w.err = errors.New("some error")
	assert.EqualError(t, w.Write([]byte(data)), "some error")
	assert.EqualError(t, w.Flush(), "some error")
}

func TestWriterPlainWriter(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	assert.NoError(t, w.Write([]byte("a")))
	assert.NoError(t, w.Write(nil))
	assert.NoError(t, w.Write([]byte("b")))
	assert.NoError(t, w.Flush())
	assert.Equal(t, "ab", out.String())
}
