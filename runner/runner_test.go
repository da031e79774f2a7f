package runner

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"respfuzz/generator"
	"respfuzz/pkg/mockconn"
	"respfuzz/pkg/types"
	"respfuzz/proto/resp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(argv []string) mockconn.Reply {
	switch argv[0] {
	case "BAD":
		return mockconn.Reply{Raw: "!garbage\r\n"}
	case "SLOW":
		return mockconn.Reply{Raw: "+LATE\r\n", Delay: 500 * time.Millisecond}
	case "DROP":
		return mockconn.Reply{Close: true}
	case "GET":
		return mockconn.Reply{Raw: "$1\r\nb\r\n"}
	case "NOPE":
		return mockconn.Reply{Raw: "-ERR unknown command\r\n"}
	}
	return mockconn.Reply{Raw: "+OK\r\n"}
}

func newTestRunner(t *testing.T, h mockconn.Handler) (*Runner, *mockconn.Server) {
	srv, err := mockconn.NewServer(h)
	require.NoError(t, err)
	r := New(&TCPDialer{
		Address:      srv.Addr(),
		DialTimeout:  time.Second,
		ReadTimeout:  200 * time.Millisecond,
		WriteTimeout: time.Second,
	})
	return r, srv
}

func cmds(lines ...[]string) []generator.Command {
	out := make([]generator.Command, len(lines))
	for i, l := range lines {
		out[i] = generator.Command{Name: l[0], Args: l[1:]}
	}
	return out
}

func TestExecuteFaultIsolation(t *testing.T) {
	r, srv := newTestRunner(t, scripted)
	defer srv.Close()
	defer r.Close()

	tc := NewTestCase(cmds(
		[]string{"SET", "a", "b"},
		[]string{"BAD"},
		[]string{"GET", "a"},
		[]string{"SLOW"},
		[]string{"DROP"},
		[]string{"NOPE"},
		[]string{"PING"},
	))
	require.NoError(t, r.Execute(context.Background(), tc))
	require.Len(t, tc.Results, 7)

	assert.Equal(t, types.OutcomeSuccess, tc.Results[0].Outcome())
	assert.Equal(t, resp.SimpleString("OK"), *tc.Results[0].Reply)
	assert.Equal(t, []string{"a", "b"}, tc.Results[0].Args)

	assert.Equal(t, types.OutcomeError, tc.Results[1].Outcome())
	assert.Nil(t, tc.Results[1].Reply)

	assert.Equal(t, resp.BulkString("b"), *tc.Results[2].Reply)

	assert.Equal(t, types.OutcomeTimeout, tc.Results[3].Outcome())
	assert.Empty(t, tc.Results[3].Error)

	assert.Equal(t, types.OutcomeError, tc.Results[4].Outcome())

	// an error reply is an answered command
	assert.Equal(t, types.OutcomeSuccess, tc.Results[5].Outcome())
	assert.True(t, tc.Results[5].Reply.IsError())

	assert.Equal(t, types.OutcomeSuccess, tc.Results[6].Outcome())

	assert.Equal(t, RunStats{Total: 7, Successful: 4, Errors: 2, Timeouts: 1}, r.Stats())
	// one initial connection plus one per failed command
	assert.Equal(t, 4, srv.Accepted())
}

func TestExecuteConnectFailure(t *testing.T) {
	dialErr := errors.New("connection refused")
	r := New(DialerFunc(func(ctx context.Context) (net.Conn, error) {
		return nil, dialErr
	}))
	tc := NewTestCase(cmds([]string{"PING"}, []string{"GET", "k"}, []string{"SET", "k", "v"}))
	err := r.Execute(context.Background(), tc)
	require.Error(t, err)
	te, ok := err.(*TransportError)
	require.True(t, ok)
	assert.Equal(t, "dial", te.Op)
	assert.Equal(t, dialErr, te.Cause())

	require.Len(t, tc.Results, 3)
	for _, res := range tc.Results {
		assert.Equal(t, types.OutcomeError, res.Outcome())
		assert.Contains(t, res.Error, "connection refused")
	}
	assert.Equal(t, RunStats{Total: 3, Errors: 3}, r.Stats())
}

func TestExecuteClosedPort(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	r := New(&TCPDialer{Address: addr, DialTimeout: time.Second})
	tc := NewTestCase(cmds([]string{"PING"}))
	assert.Error(t, r.Execute(context.Background(), tc))
	assert.Equal(t, int64(1), r.Stats().Errors)
}

func TestExecuteCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv, err := mockconn.NewServer(func(argv []string) mockconn.Reply {
		if argv[0] == "HANG" {
			cancel()
			return mockconn.Reply{Raw: "+OK\r\n", Delay: time.Second}
		}
		return mockconn.Reply{Raw: "+OK\r\n"}
	})
	require.NoError(t, err)
	defer srv.Close()
	r := New(&TCPDialer{Address: srv.Addr(), DialTimeout: time.Second, ReadTimeout: 5 * time.Second})
	defer r.Close()

	tc := NewTestCase(cmds([]string{"PING"}, []string{"HANG"}, []string{"PING"}, []string{"PING"}))
	start := time.Now()
	err = r.Execute(ctx, tc)
	assert.Equal(t, context.Canceled, err)
	assert.True(t, time.Since(start) < 2*time.Second)
	require.Len(t, tc.Results, 2)
	assert.Equal(t, types.OutcomeSuccess, tc.Results[0].Outcome())
	assert.Equal(t, context.Canceled.Error(), tc.Results[1].Error)
	assert.Len(t, srv.Requests(), 2)
}

func TestExecuteAlreadyCancelled(t *testing.T) {
	r, srv := newTestRunner(t, scripted)
	defer srv.Close()
	defer r.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tc := NewTestCase(cmds([]string{"PING"}))
	assert.Equal(t, context.Canceled, r.Execute(ctx, tc))
	assert.Empty(t, tc.Results)
	assert.Empty(t, srv.Requests())
}

func TestExecuteContainerCommand(t *testing.T) {
	r, srv := newTestRunner(t, scripted)
	defer srv.Close()
	defer r.Close()
	tc := NewTestCase(cmds([]string{"ACL CAT", "dangerous"}))
	require.NoError(t, r.Execute(context.Background(), tc))
	assert.Equal(t, [][]string{{"ACL", "CAT", "dangerous"}}, srv.Requests())
	assert.Equal(t, "ACL CAT", tc.Results[0].Command)
}

func TestProbe(t *testing.T) {
	srv, err := mockconn.NewServer(func(argv []string) mockconn.Reply {
		if argv[0] == "INFO" {
			body := "# Server\r\nredis_version:7.2.0\r\n"
			return mockconn.Reply{Raw: "$" + strconv.Itoa(len(body)) + "\r\n" + body + "\r\n"}
		}
		return mockconn.Reply{Raw: "-ERR\r\n"}
	})
	require.NoError(t, err)
	defer srv.Close()

	line, err := Probe(srv.Addr(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "# Server", line)

	srv.Close()
	_, err = Probe(srv.Addr(), 200*time.Millisecond)
	assert.Error(t, err)
}
