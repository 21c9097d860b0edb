package metrics

import (
	coremetrics "github.com/predlab/predeval/core/metrics"
)

// NewFromConfig assembles the sink stack described by the
// configuration: none enabled yields a NopSink, several a MultiSink.
func NewFromConfig(cfg coremetrics.Config) (coremetrics.ReportSink, error) {
	var sinks []coremetrics.ReportSink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSink()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
