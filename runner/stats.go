package runner

import (
	"fmt"

	"respfuzz/pkg/types"
)

// RunStats counts executed commands by outcome.
type RunStats struct {
	Total      int64 `json:"total_executions"`
	Successful int64 `json:"successful_executions"`
	Errors     int64 `json:"error_executions"`
	Timeouts   int64 `json:"timeouts"`
}

// Add counts one command.
func (s *RunStats) Add(o types.Outcome) {
	s.Total++
	switch o {
	case types.OutcomeSuccess:
		s.Successful++
	case types.OutcomeTimeout:
		s.Timeouts++
	default:
		s.Errors++
	}
}

// Merge adds the counters of o.
func (s *RunStats) Merge(o RunStats) {
	s.Total += o.Total
	s.Successful += o.Successful
	s.Errors += o.Errors
	s.Timeouts += o.Timeouts
}

func (s RunStats) String() string {
	return fmt.Sprintf("total: %d, successful: %d, errors: %d, timeouts: %d", s.Total, s.Successful, s.Errors, s.Timeouts)
}
