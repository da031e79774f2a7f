package prom

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
)

func TestPromDisabled(t *testing.T) {
	On = false
	defer func() { On = true }()
	// must not panic before Init or while switched off
	ExecIncr("success")
	ExecAdd("error", 2)
	CommandTime("GET", 10)
	DroppedAdd(1)
	CaseIncr()
}

func TestPromExport(t *testing.T) {
	Init()
	Init()
	ExecIncr("success")
	ExecAdd("error", 3)
	CommandTime("GET", 120)
	DroppedAdd(2)
	CaseIncr()

	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `respfuzz_executions{outcome="error"} 3`))
	assert.True(t, strings.Contains(body, `respfuzz_command_timer_count{cmd="GET"} 1`))
	assert.True(t, strings.Contains(body, "respfuzz_dropped_lines 2"))
	assert.True(t, strings.Contains(body, "respfuzz_test_cases 1"))
}
