package prom

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statExecutions = "respfuzz_executions"
	statDropped    = "respfuzz_dropped_lines"
	statCases      = "respfuzz_test_cases"

	statCommandTimer = "respfuzz_command_timer"
)

var (
	executions   *prometheus.CounterVec
	dropped      prometheus.Counter
	cases        prometheus.Counter
	commandTimer *prometheus.HistogramVec

	outcomeLabels = []string{"outcome"}
	cmdLabels     = []string{"cmd"}
	// On Prom switch
	On = true

	once sync.Once
)

// Init init prometheus, calling it again is a no-op.
func Init() {
	once.Do(func() {
		executions = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: statExecutions,
				Help: statExecutions,
			}, outcomeLabels)
		prometheus.MustRegister(executions)
		dropped = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: statDropped,
				Help: statDropped,
			})
		prometheus.MustRegister(dropped)
		cases = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: statCases,
				Help: statCases,
			})
		prometheus.MustRegister(cases)
		commandTimer = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    statCommandTimer,
				Help:    statCommandTimer,
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			}, cmdLabels)
		prometheus.MustRegister(commandTimer)
		// metrics
		metrics()
	})
}

func metrics() {
	http.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		h := promhttp.Handler()
		h.ServeHTTP(w, r)
	})
}

// ExecIncr increments the executions counter of one outcome.
func ExecIncr(outcome string) {
	if !On || executions == nil {
		return
	}
	executions.WithLabelValues(outcome).Inc()
}

// ExecAdd adds n to the executions counter of one outcome.
func ExecAdd(outcome string, n int) {
	if !On || executions == nil || n <= 0 {
		return
	}
	executions.WithLabelValues(outcome).Add(float64(n))
}

// CommandTime log timing information (in microseconds).
func CommandTime(cmd string, ts int64) {
	if !On || commandTimer == nil {
		return
	}
	commandTimer.WithLabelValues(cmd).Observe(float64(ts))
}

// DroppedAdd counts seed lines that matched no command.
func DroppedAdd(n int) {
	if !On || dropped == nil || n <= 0 {
		return
	}
	dropped.Add(float64(n))
}

// CaseIncr counts executed test cases.
func CaseIncr() {
	if !On || cases == nil {
		return
	}
	cases.Inc()
}
