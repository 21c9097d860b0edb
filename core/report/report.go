// Package report aggregates the scalar metrics of one evaluation run
// into a value that sinks and the CLI can consume.
package report

import (
	"math"

	"github.com/google/uuid"

	"github.com/predlab/predeval/core/prediction"
)

// Kind identifies the prediction variant a report was computed from.
type Kind string

const (
	KindGeneric Kind = "generic"
	KindNumeric Kind = "numeric"
	KindBinary  Kind = "binary"
)

// Report captures the scalar metrics of a single evaluation run.
// Metrics that do not apply to the run's kind are NaN.
type Report struct {
	RunID   string
	Dataset string
	Kind    Kind
	N       int
	PCC     float64

	// Numeric predictions only.
	RSquared        float64
	Tolerance       float64
	WithinTolerance float64

	// Binary predictions only.
	FalsePositiveRate float64
	FalseNegativeRate float64
	Sensitivity       float64
	Specificity       float64
	Confusion         [2][2]int
}

func newReport(dataset string, kind Kind, n int, pcc float64) Report {
	nan := math.NaN()
	return Report{
		RunID:             uuid.NewString(),
		Dataset:           dataset,
		Kind:              kind,
		N:                 n,
		PCC:               pcc,
		RSquared:          nan,
		Tolerance:         nan,
		WithinTolerance:   nan,
		FalsePositiveRate: nan,
		FalseNegativeRate: nan,
		Sensitivity:       nan,
		Specificity:       nan,
	}
}

// FromGeneric builds a report for a generic prediction.
func FromGeneric[T comparable](dataset string, p *prediction.Prediction[T]) Report {
	return newReport(dataset, KindGeneric, p.Length(), p.PCC())
}

// FromNumeric builds a report for a numeric prediction. WithinTolerance
// is the share of elements whose fitted value lies within the given
// tolerance of the real value.
func FromNumeric(dataset string, p *prediction.NumericPrediction, tolerance float64) Report {
	r := newReport(dataset, KindNumeric, p.Length(), p.PCC())
	r.RSquared = p.RSquared()
	r.Tolerance = tolerance
	matched := 0
	for _, ok := range p.Matches(tolerance) {
		if ok {
			matched++
		}
	}
	r.WithinTolerance = float64(matched) / float64(p.Length())
	return r
}

// FromBinary builds a report for a binary prediction.
func FromBinary[T comparable](dataset string, p *prediction.BinaryPrediction[T]) Report {
	r := newReport(dataset, KindBinary, p.Length(), p.PCC())
	r.FalsePositiveRate = p.FalsePositiveRate()
	r.FalseNegativeRate = p.FalseNegativeRate()
	r.Sensitivity = p.Sensitivity()
	r.Specificity = p.Specificity()
	r.Confusion = p.ConfusionMatrix()
	return r
}

// Scalars returns the named scalar metrics carried by the report,
// including undefined (NaN) ones. Confusion counts are not included.
func (r Report) Scalars() map[string]float64 {
	m := map[string]float64{"pcc": r.PCC}
	switch r.Kind {
	case KindNumeric:
		m["r_squared"] = r.RSquared
		m["within_tolerance"] = r.WithinTolerance
	case KindBinary:
		m["false_positive_rate"] = r.FalsePositiveRate
		m["false_negative_rate"] = r.FalseNegativeRate
		m["sensitivity"] = r.Sensitivity
		m["specificity"] = r.Specificity
	}
	return m
}
