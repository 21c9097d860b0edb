package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/predlab/predeval/core/metrics"
	"github.com/predlab/predeval/core/report"
	"github.com/predlab/predeval/infra/logger"
)

// InfluxSink writes evaluation reports to an InfluxDB instance using
// the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.ReportSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordReport writes the report as a single evaluation point. Only
// defined (finite) metrics become fields.
func (s *InfluxSink) RecordReport(rep report.Report) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("evaluation").
		AddTag("run_id", rep.RunID).
		AddTag("dataset", rep.Dataset).
		AddTag("kind", string(rep.Kind)).
		AddField("elements", rep.N).
		SetTime(time.Now())
	for name, v := range rep.Scalars() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		p.AddField(name, round3(v))
	}
	if rep.Kind == report.KindBinary {
		p.AddField("true_negatives", rep.Confusion[0][0]).
			AddField("false_positives", rep.Confusion[0][1]).
			AddField("false_negatives", rep.Confusion[1][0]).
			AddField("true_positives", rep.Confusion[1][1])
	}
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
