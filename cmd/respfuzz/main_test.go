package main

import (
	"bytes"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"respfuzz/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	confFile, host, seed, logFile, metrics = "", "", "", "", ""
	port, commands, logVl = 0, 0, 0
	debug = false
}

func TestParseConfigPriority(t *testing.T) {
	defer resetFlags()
	dir, err := ioutil.TempDir("", "respfuzz-main")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	confFile = filepath.Join(dir, "respfuzz.toml")
	require.NoError(t, ioutil.WriteFile(confFile, []byte("[target]\nhost = \"conf.host\"\nport = 7001\n[fuzz]\nmax_commands = 5\n"), 0644))

	os.Setenv(config.EnvPort, "7002")
	os.Setenv(config.EnvMaxCommands, "6")
	defer os.Unsetenv(config.EnvPort)
	defer os.Unsetenv(config.EnvMaxCommands)

	commands = 7
	seed = "99"
	c, warns, err := parseConfig()
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, "conf.host:7002", c.Target.Addr())
	assert.Equal(t, 7, c.Fuzz.MaxCommands)
	assert.Equal(t, int64(99), c.Fuzz.Seed)

	seed = "nope"
	_, _, err = parseConfig()
	assert.Error(t, err)
}

func TestNewApp(t *testing.T) {
	app := newApp()
	names := map[string]bool{}
	for _, c := range app.Commands {
		names[c.Name] = true
	}
	assert.Equal(t, map[string]bool{"fuzz": true, "run": true, "replay": true, "dict": true}, names)
	assert.NotNil(t, app.Action)
}

func closedPort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	p := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return p
}

func TestFuzzActionReportsFailedRun(t *testing.T) {
	defer resetFlags()
	in, err := ioutil.TempFile("", "respfuzz-stdin")
	require.NoError(t, err)
	defer os.Remove(in.Name())
	_, err = in.WriteString("GET foo\nBADCMD x\n")
	require.NoError(t, err)
	_, err = in.Seek(0, 0)
	require.NoError(t, err)
	stdin := os.Stdin
	os.Stdin = in
	defer func() {
		os.Stdin = stdin
		in.Close()
	}()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err = app.Run([]string{"respfuzz", "--host", "127.0.0.1", "--port", strconv.Itoa(closedPort(t)), "--seed", "7", "fuzz"})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "seed: 7, parsed: 1, dropped: 1")
	assert.Contains(t, s, "successful: 0")
	assert.Contains(t, s, "error: ")
	assert.NotContains(t, s, "total: 0,")
}
