package prediction

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// NumericPrediction evaluates continuous-valued predictions. On top of
// the generic metrics it provides residuals, tolerance-based matching
// and a correlation-based goodness of fit.
type NumericPrediction struct {
	Prediction[float64]
}

// NewNumeric builds a NumericPrediction from two aligned sequences of
// numeric values.
func NewNumeric(fitted, real []float64) (*NumericPrediction, error) {
	p, err := New(fitted, real)
	if err != nil {
		return nil, err
	}
	return &NumericPrediction{Prediction: *p}, nil
}

// RSquared returns the square of the Pearson correlation coefficient
// between the real and the fitted values. NaN when either sequence has
// zero variance or fewer than two elements.
func (p *NumericPrediction) RSquared() float64 {
	r := stat.Correlation(p.real, p.fitted, nil)
	return r * r
}

// Residuals returns real minus fitted for every element. With squared
// set, each residual is squared; otherwise with absoluteValue set, its
// magnitude is returned. squared wins when both flags are set, and
// exactly one of the three forms is returned per call.
func (p *NumericPrediction) Residuals(squared, absoluteValue bool) []float64 {
	res := make([]float64, len(p.fitted))
	for i := range p.fitted {
		res[i] = p.real[i] - p.fitted[i]
	}
	if squared {
		for i, r := range res {
			res[i] = r * r
		}
		return res
	}
	if absoluteValue {
		for i, r := range res {
			res[i] = math.Abs(r)
		}
	}
	return res
}

// Matches returns, for every element, whether the fitted value lies
// within tolerance of the real value. A zero tolerance demands exact
// equality. Negative tolerances are not rejected but match nothing.
func (p *NumericPrediction) Matches(tolerance float64) []bool {
	m := make([]bool, len(p.fitted))
	for i := range p.fitted {
		m[i] = math.Abs(p.real[i]-p.fitted[i]) <= tolerance
	}
	return m
}

// AsFrame returns the prediction as a row-aligned frame. The match
// column uses tolerance zero and the relative difference is the signed
// residual over the real value, ±Inf or NaN where the real value is
// zero.
func (p *NumericPrediction) AsFrame() *Frame {
	matches := p.Matches(0)
	res := p.Residuals(false, false)
	f := &Frame{
		Columns: []string{ColFitted, ColReal, ColMatches, ColAbsDiff, ColRelDiff},
		Rows:    make([][]any, len(p.fitted)),
	}
	for i := range p.fitted {
		f.Rows[i] = []any{p.fitted[i], p.real[i], matches[i], res[i], res[i] / p.real[i]}
	}
	return f
}
