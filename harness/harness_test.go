package harness

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io/ioutil"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"respfuzz/generator"
	"respfuzz/pkg/mockconn"
	"respfuzz/pkg/types"
	"respfuzz/runner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okServer(t *testing.T) *mockconn.Server {
	srv, err := mockconn.NewServer(func(argv []string) mockconn.Reply {
		return mockconn.Reply{Raw: "+OK\r\n"}
	})
	require.NoError(t, err)
	return srv
}

func newHarness(srv *mockconn.Server, opts Options) (*Harness, *runner.Runner) {
	r := runner.New(&runner.TCPDialer{Address: srv.Addr(), DialTimeout: time.Second, ReadTimeout: time.Second, WriteTimeout: time.Second})
	return New(opts, generator.DefaultCatalog(), r), r
}

func testGenerator(exclude ...string) *generator.CommandGenerator {
	return generator.NewCommandGenerator(generator.NewSeededContext(1, nil, nil, 0), generator.DefaultCatalog(), exclude, nil)
}

func TestSeedFromInput(t *testing.T) {
	s, ok := SeedFromInput([]byte{1, 0, 0, 0, 9})
	assert.True(t, ok)
	assert.Equal(t, int64(1), s)
	s, ok = SeedFromInput([]byte{0xff, 0xff, 0xff, 0xff})
	assert.True(t, ok)
	assert.Equal(t, int64(4294967295), s)
	_, ok = SeedFromInput([]byte("abc"))
	assert.False(t, ok)
}

func TestParseInput(t *testing.T) {
	g := testGenerator("FLUSHALL", "FUNCTION")
	tests := []struct {
		name    string
		input   string
		cmds    []generator.Command
		dropped int
	}{
		{"simple", "GET foo\nBADCMD x\n", []generator.Command{{Name: "GET", Args: []string{"foo"}}}, 1},
		{"case", "set k v\nPing", []generator.Command{{Name: "SET", Args: []string{"k", "v"}}, {Name: "PING", Args: []string{}}}, 0},
		{"container", "acl cat dangerous\nACL NOPE", []generator.Command{{Name: "ACL CAT", Args: []string{"dangerous"}}}, 1},
		{"excluded", "FLUSHALL\nflushall ASYNC", nil, 2},
		{"excluded container", "function flush\nFUNCTION\nFUNCTION LIST", nil, 3},
		{"blank", "\n\n   \nECHO  a\n", []generator.Command{{Name: "ECHO", Args: []string{"", "a"}}}, 1},
		{"utf8", "GE\xffT k\xfe\r\n", []generator.Command{{Name: "GET", Args: []string{"k"}}}, 0},
		{"empty", "", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, dropped := ParseInput([]byte(tt.input), g)
			assert.Equal(t, tt.cmds, cmds)
			assert.Equal(t, tt.dropped, dropped)
		})
	}
}

func TestMix(t *testing.T) {
	g := testGenerator()
	var parsed []generator.Command
	for i := 0; i < 10; i++ {
		parsed = append(parsed, generator.Command{Name: "ECHO", Args: []string{"seed" + string(rune('a'+i))}})
	}
	for i := 0; i < 200; i++ {
		cmds := Mix(g, parsed, 20)
		require.True(t, len(cmds) >= 1 && len(cmds) <= 20)
		want := len(cmds)/2 + 1
		if want > len(parsed) {
			want = len(parsed)
		}
		seen := map[string]bool{}
		for _, c := range cmds[:want] {
			require.True(t, strings.HasPrefix(c.Args[0], "seed"))
			assert.False(t, seen[c.Args[0]])
			seen[c.Args[0]] = true
		}
	}
	for i := 0; i < 50; i++ {
		cmds := Mix(g, nil, 3)
		assert.True(t, len(cmds) >= 1 && len(cmds) <= 3)
	}
}

func TestRunSeededInput(t *testing.T) {
	srv := okServer(t)
	defer srv.Close()
	h, r := newHarness(srv, Options{MixRatio: 0.9})
	defer r.Close()

	input := "GET foo\nBADCMD x\n"
	rep := h.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, rep.Err)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, int64(binary.LittleEndian.Uint32([]byte(input[:4]))), rep.Seed)
	assert.Equal(t, 1, rep.Parsed)
	assert.Equal(t, 1, rep.Dropped)

	tc := rep.TestCase
	require.NotNil(t, tc)
	assert.True(t, tc.Shuffled())
	assert.True(t, len(tc.Commands) >= 1 && len(tc.Commands) <= DefaultMaxCommands)
	n := 0
	for _, c := range tc.Commands {
		if c.Name == "GET" && len(c.Args) == 1 && c.Args[0] == "foo" {
			n++
		}
	}
	assert.Equal(t, 1, n)
	assert.Len(t, tc.Results, len(tc.Commands))
	assert.Equal(t, int64(len(tc.Commands)), rep.Stats.Total)
	assert.Contains(t, srv.Requests(), []string{"GET", "foo"})
	assert.Equal(t, stageTerminate, h.stage)
}

func TestRunReproducible(t *testing.T) {
	srv := okServer(t)
	defer srv.Close()
	h, r := newHarness(srv, Options{MixRatio: 0.5, Dict: []string{"dictval"}, Corpus: []string{"a b"}})
	defer r.Close()

	input := []byte("\x01\x02\x03\x04SET k v\nGET k\n")
	a := h.Run(context.Background(), bytes.NewReader(input))
	b := h.Run(context.Background(), bytes.NewReader(input))
	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, a.TestCase.Commands, b.TestCase.Commands)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRunEmptyInput(t *testing.T) {
	srv := okServer(t)
	defer srv.Close()
	h, r := newHarness(srv, Options{MaxCommands: 5})
	defer r.Close()

	rep := h.Run(context.Background(), strings.NewReader(""))
	require.NoError(t, rep.Err)
	assert.Equal(t, 0, rep.Parsed)
	assert.Equal(t, 0, rep.Dropped)
	assert.NotZero(t, rep.Seed)
	assert.True(t, len(rep.TestCase.Commands) >= 1 && len(rep.TestCase.Commands) <= 5)
	assert.Equal(t, int64(len(rep.TestCase.Commands)), rep.Stats.Successful)
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }

func TestRunUnreadableInput(t *testing.T) {
	srv := okServer(t)
	defer srv.Close()
	h, r := newHarness(srv, Options{Seed: 42})
	defer r.Close()

	rep := h.Run(context.Background(), failReader{})
	require.NoError(t, rep.Err)
	assert.Equal(t, int64(42), rep.Seed)
	assert.NotEmpty(t, rep.TestCase.Commands)
}

func TestRunConnectFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	r := runner.New(&runner.TCPDialer{Address: addr, DialTimeout: time.Second})
	h := New(Options{ProbeAddr: addr, ProbeTimeout: 100 * time.Millisecond}, generator.DefaultCatalog(), r)
	rep := h.Run(context.Background(), strings.NewReader("PING\n"))
	require.Error(t, rep.Err)
	require.NotNil(t, rep.TestCase)
	n := int64(len(rep.TestCase.Commands))
	assert.Equal(t, runner.RunStats{Total: n, Errors: n}, rep.Stats)
	for _, res := range rep.TestCase.Results {
		assert.Equal(t, types.OutcomeError, res.Outcome())
	}
}

func TestRunSave(t *testing.T) {
	dir, err := ioutil.TempDir("", "respfuzz-harness")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	srv := okServer(t)
	defer srv.Close()
	h, r := newHarness(srv, Options{SaveDir: dir, SaveFormat: types.SaveFormatMsgpack})
	defer r.Close()

	rep := h.Run(context.Background(), strings.NewReader("ECHO hello\n"))
	require.NotEmpty(t, rep.SavedTo)
	assert.True(t, strings.HasSuffix(rep.SavedTo, ".msgpack"))

	tc, err := runner.Load(rep.SavedTo)
	require.NoError(t, err)
	assert.Equal(t, len(rep.TestCase.Commands), len(tc.Commands))
	assert.Len(t, tc.Results, len(tc.Commands))

	again := h.Replay(context.Background(), tc)
	require.NoError(t, again.Err)
	assert.Equal(t, int64(len(tc.Commands)), again.Stats.Successful)
}

func TestLoop(t *testing.T) {
	srv := okServer(t)
	defer srv.Close()
	h, r := newHarness(srv, Options{Seed: 7, MaxCommands: 4})
	defer r.Close()

	stats, err := h.Loop(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, stats.Total >= 3 && stats.Total <= 12)
	assert.Equal(t, stats.Total, stats.Successful)
	assert.Equal(t, stats.Total, r.Stats().Total)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.Loop(ctx, 0)
	assert.Equal(t, context.Canceled, err)
}
