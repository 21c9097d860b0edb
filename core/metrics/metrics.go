// Package metrics defines the sink abstraction evaluation reports are
// published to. Implementations live under infra/metrics.
package metrics

import "github.com/predlab/predeval/core/report"

// ReportSink receives evaluation reports.
type ReportSink interface {
	RecordReport(report.Report) error
}

// NopSink discards all reports.
type NopSink struct{}

func (NopSink) RecordReport(report.Report) error { return nil }
