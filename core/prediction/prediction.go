package prediction

import (
	"fmt"
	"reflect"
)

// Prediction holds a sequence of fitted values and the positionally
// aligned sequence of real values they are compared against. Element i
// of the fitted values corresponds to element i of the real values.
type Prediction[T comparable] struct {
	fitted []T
	real   []T
}

// New builds a Prediction from two aligned sequences. Both inputs are
// copied, so later mutation of the arguments does not affect the
// prediction. A nil real slice means no ground truth is available yet;
// the length check is skipped and metrics requiring real values fail
// naturally when called.
func New[T comparable](fitted, real []T) (*Prediction[T], error) {
	if real != nil && len(fitted) != len(real) {
		return nil, fmt.Errorf(
			"fitted values and real values must have the same length: fitted has length %d, real has length %d",
			len(fitted), len(real))
	}
	p := &Prediction[T]{fitted: append([]T(nil), fitted...)}
	if real != nil {
		p.real = append([]T(nil), real...)
	}
	return p, nil
}

// Length returns the number of elements in the prediction.
func (p *Prediction[T]) Length() int { return len(p.fitted) }

// String returns the textual form of the fitted values.
func (p *Prediction[T]) String() string { return fmt.Sprint(p.fitted) }

// FittedValues returns a copy of the fitted values.
func (p *Prediction[T]) FittedValues() []T { return append([]T(nil), p.fitted...) }

// RealValues returns a copy of the real values, nil when no ground
// truth was provided.
func (p *Prediction[T]) RealValues() []T {
	if p.real == nil {
		return nil
	}
	return append([]T(nil), p.real...)
}

// IsNumeric reports whether the element type belongs to the int, uint
// or float families.
func (p *Prediction[T]) IsNumeric() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Matches returns, for every element, whether the fitted value equals
// the real value.
func (p *Prediction[T]) Matches() []bool {
	m := make([]bool, len(p.fitted))
	for i, f := range p.fitted {
		m[i] = p.real[i] == f
	}
	return m
}

// PercentageCorrectlyClassified returns the share of elements whose
// fitted value equals the real value, in [0,1]. NaN for an empty
// prediction.
func (p *Prediction[T]) PercentageCorrectlyClassified() float64 {
	matched := 0
	for _, ok := range p.Matches() {
		if ok {
			matched++
		}
	}
	return float64(matched) / float64(len(p.fitted))
}

// PCC is shorthand for PercentageCorrectlyClassified.
func (p *Prediction[T]) PCC() float64 { return p.PercentageCorrectlyClassified() }

// AsFrame returns the prediction as a row-aligned frame with one row
// per element and the fitted, real and match columns.
func (p *Prediction[T]) AsFrame() *Frame {
	matches := p.Matches()
	f := &Frame{
		Columns: []string{ColFitted, ColReal, ColMatches},
		Rows:    make([][]any, len(p.fitted)),
	}
	for i := range p.fitted {
		f.Rows[i] = []any{p.fitted[i], p.real[i], matches[i]}
	}
	return f
}
