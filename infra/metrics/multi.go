package metrics

import (
	coremetrics "github.com/predlab/predeval/core/metrics"
	"github.com/predlab/predeval/core/report"
)

// MultiSink fans evaluation reports out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.ReportSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.ReportSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordReport forwards the report to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordReport(rep report.Report) error {
	for _, s := range m.Sinks {
		if err := s.RecordReport(rep); err != nil {
			return err
		}
	}
	return nil
}
