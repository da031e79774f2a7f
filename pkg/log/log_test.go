package log_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"respfuzz/pkg/log"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	buf := new(bytes.Buffer)
	log.InitHandle(log.NewWriterHandler(buf))
	defer log.Close()

	log.Info("test1", "test2")
	log.Warnf("1(%s)", "test1")
	log.Error("test3")
	log.Errorf("stack:%+v", errors.New("this is a error"))

	out := buf.String()
	assert.Contains(t, out, "[INFO] test1test2")
	assert.Contains(t, out, "[WARN] 1(test1)")
	assert.Contains(t, out, "[ERROR] test3")
	assert.Contains(t, out, "log_test.go")
}

func TestLogVerbose(t *testing.T) {
	buf := new(bytes.Buffer)
	log.InitHandle(log.NewWriterHandler(buf))
	defer log.Close()

	old := log.DefaultVerboseLevel
	log.DefaultVerboseLevel = 3
	defer func() { log.DefaultVerboseLevel = old }()

	log.V(5).Info("this cannot be print")
	log.V(5).Errorf("this cannot be print:%s", "yeah")
	log.V(3).Infof("this will be printing:%s", "yeah")
	log.V(2).Warn("this will be printing too")

	out := buf.String()
	assert.NotContains(t, out, "cannot")
	assert.Contains(t, out, "[INFO] this will be printing:yeah")
	assert.Contains(t, out, "[WARN] this will be printing too")
}

func TestLogFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "respfuzz-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "fuzz.log")
	assert.True(t, log.Init(&log.Config{Log: path, LogVL: 1}))
	log.Infof("dropped %d lines", 3)
	require.NoError(t, log.Close())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "[INFO] dropped 3 lines"))
}

func TestLogNoHandler(t *testing.T) {
	assert.False(t, log.Init(nil))
	log.Info("nobody listens")
	assert.NoError(t, log.Close())
}
