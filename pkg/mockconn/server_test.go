package mockconn

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerEcho(t *testing.T) {
	s, err := NewServer(func(argv []string) Reply {
		if argv[0] == "QUIT" {
			return Reply{Close: true}
		}
		return Reply{Raw: "+" + argv[0] + "\r\n"}
	})
	require.NoError(t, err)
	defer s.Close()

	conn, err := net.DialTimeout("tcp", s.Addr(), time.Second)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(2 * time.Second))

	_, err = conn.Write([]byte("*2\r\n$3\r\nGET\r\n$3\r\nfoo\r\n"))
	require.NoError(t, err)
	br := bufio.NewReader(conn)
	line, err := br.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "+GET\r\n", line)

	_, err = conn.Write([]byte("*1\r\n$4\r\nQUIT\r\n"))
	require.NoError(t, err)
	_, err = br.ReadString('\n')
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, [][]string{{"GET", "foo"}, {"QUIT"}}, s.Requests())
	assert.Equal(t, 1, s.Accepted())
}

func TestMockConnRepeat(t *testing.T) {
	c := CreateConn([]byte("+OK\r\n"), 2)
	buf := make([]byte, 64)
	n, err := c.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "+OK\r\n", string(buf[:n]))
	n, err = c.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "+OK\r\n", string(buf[:n]))
	_, err = c.Read(buf)
	assert.Equal(t, io.EOF, err)

	_, err = c.Write([]byte("x"))
	assert.NoError(t, err)
	assert.Equal(t, "x", c.Wbuf.String())

	c.Close()
	assert.True(t, c.IsClosed())
	_, err = c.Write([]byte("x"))
	assert.Equal(t, io.EOF, err)
}

func TestMockConnErr(t *testing.T) {
	c := CreateErrConn(io.ErrClosedPipe)
	_, err := c.Read(make([]byte, 1))
	assert.Equal(t, io.ErrClosedPipe, err)
	_, err = c.Write([]byte("x"))
	assert.Equal(t, io.ErrClosedPipe, err)
}
