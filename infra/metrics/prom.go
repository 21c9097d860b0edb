// Package metrics implements the report sinks: Prometheus gauges,
// InfluxDB line protocol and a fan-out over several sinks.
package metrics

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/predlab/predeval/core/metrics"
	"github.com/predlab/predeval/core/report"
)

// PromSink exposes evaluation reports as Prometheus gauges.
type PromSink struct {
	scalars   *prometheus.GaugeVec
	elements  *prometheus.GaugeVec
	confusion *prometheus.GaugeVec
}

// NewPromSink registers the evaluation metrics on the default
// Prometheus registerer. The Prometheus server should be started
// separately using StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	scalars := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "evaluation_metric",
		Help: "Scalar accuracy metrics of the last evaluation run",
	}, []string{"dataset", "kind", "metric"})
	elements := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "evaluation_elements_total",
		Help: "Number of elements in the last evaluation run",
	}, []string{"dataset", "kind"})
	confusion := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "evaluation_confusion",
		Help: "Confusion matrix counts of the last binary evaluation run",
	}, []string{"dataset", "actual", "predicted"})

	if err := reg.Register(scalars); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			scalars = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(elements); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			elements = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(confusion); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			confusion = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{scalars: scalars, elements: elements, confusion: confusion}, nil
}

// RecordReport sets the gauges for every defined metric in the report.
// Undefined (NaN or infinite) metrics are skipped.
func (s *PromSink) RecordReport(rep report.Report) error {
	s.elements.WithLabelValues(rep.Dataset, string(rep.Kind)).Set(float64(rep.N))
	for name, v := range rep.Scalars() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.scalars.WithLabelValues(rep.Dataset, string(rep.Kind), name).Set(v)
	}
	if rep.Kind == report.KindBinary {
		labels := [2]string{"negative", "positive"}
		for actual := 0; actual < 2; actual++ {
			for predicted := 0; predicted < 2; predicted++ {
				s.confusion.WithLabelValues(rep.Dataset, labels[actual], labels[predicted]).
					Set(float64(rep.Confusion[actual][predicted]))
			}
		}
	}
	return nil
}

var _ coremetrics.ReportSink = (*PromSink)(nil)

// StartPromServer exposes the default registry on the given port.
func StartPromServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("prometheus server: %w", err)
	}
	return nil
}
