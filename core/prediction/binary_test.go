package prediction

import (
	"errors"
	"math"
	"testing"
)

func newBinaryFixture(t *testing.T) *BinaryPrediction[int] {
	t.Helper()
	p, err := NewBinary([]int{1, 1, 0, 0}, []int{1, 0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return p
}

func TestConfusionMatrix(t *testing.T) {
	p := newBinaryFixture(t)
	want := [2][2]int{{2, 1}, {0, 1}}
	if got := p.ConfusionMatrix(); got != want {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestBinaryRates(t *testing.T) {
	p := newBinaryFixture(t)
	if fpr := p.FalsePositiveRate(); math.Abs(fpr-1.0/3.0) > 1e-12 {
		t.Fatalf("expected fpr 1/3 got %v", fpr)
	}
	if fnr := p.FalseNegativeRate(); fnr != 0 {
		t.Fatalf("expected fnr 0 got %v", fnr)
	}
	if sens := p.Sensitivity(); sens != 0.5 {
		t.Fatalf("expected sensitivity 1/2 got %v", sens)
	}
	if spec := p.Specificity(); math.Abs(spec-2.0/3.0) > 1e-12 {
		t.Fatalf("expected specificity 2/3 got %v", spec)
	}
}

func TestBinaryDegenerateRates(t *testing.T) {
	// no actual negatives: fpr has an empty denominator
	allPos, _ := NewBinary([]int{0, 0}, []int{1, 1}, 1)
	if !math.IsNaN(allPos.FalsePositiveRate()) {
		t.Fatalf("expected NaN fpr got %v", allPos.FalsePositiveRate())
	}
	agreeing, _ := NewBinary([]int{1, 1}, []int{1, 1}, 1)
	if !math.IsNaN(agreeing.FalsePositiveRate()) {
		t.Fatalf("expected NaN fpr got %v", agreeing.FalsePositiveRate())
	}
	// no actual positives: fnr has an empty denominator
	allNeg, _ := NewBinary([]int{1, 0}, []int{0, 0}, 1)
	if !math.IsNaN(allNeg.FalseNegativeRate()) {
		t.Fatalf("expected NaN fnr got %v", allNeg.FalseNegativeRate())
	}
}

func TestValueNegative(t *testing.T) {
	p := newBinaryFixture(t)
	neg, err := p.ValueNegative()
	if err != nil {
		t.Fatalf("value negative: %v", err)
	}
	if neg != 0 {
		t.Fatalf("expected 0 got %v", neg)
	}

	onlyPos, _ := NewBinary([]int{1, 0}, []int{1, 1}, 1)
	if _, err := onlyPos.ValueNegative(); !errors.Is(err, ErrNoNegativeValue) {
		t.Fatalf("expected ErrNoNegativeValue got %v", err)
	}
}

func TestBinaryStringClasses(t *testing.T) {
	p, err := NewBinary(
		[]string{"spam", "ham", "spam"},
		[]string{"spam", "spam", "ham"},
		"spam",
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if p.ValuePositive() != "spam" {
		t.Fatalf("unexpected positive value %q", p.ValuePositive())
	}
	neg, err := p.ValueNegative()
	if err != nil || neg != "ham" {
		t.Fatalf("expected ham got %q err %v", neg, err)
	}
	want := [2][2]int{{0, 1}, {1, 1}}
	if got := p.ConfusionMatrix(); got != want {
		t.Fatalf("expected %v got %v", want, got)
	}
	if pcc := p.PCC(); math.Abs(pcc-1.0/3.0) > 1e-12 {
		t.Fatalf("expected pcc 1/3 got %v", pcc)
	}
}

func TestConfusionFrame(t *testing.T) {
	p := newBinaryFixture(t)
	f := p.ConfusionFrame()
	if len(f.Columns) != 2 || f.Columns[0] != "Negative" || f.Columns[1] != "Positive" {
		t.Fatalf("unexpected columns %v", f.Columns)
	}
	if len(f.Index) != 2 || f.Index[0] != "Negative" || f.Index[1] != "Positive" {
		t.Fatalf("unexpected index %v", f.Index)
	}
	if f.Rows[0][0] != 2 || f.Rows[0][1] != 1 || f.Rows[1][0] != 0 || f.Rows[1][1] != 1 {
		t.Fatalf("unexpected rows %v", f.Rows)
	}
}

func TestConfusionIdempotent(t *testing.T) {
	p := newBinaryFixture(t)
	if p.ConfusionMatrix() != p.ConfusionMatrix() {
		t.Fatalf("repeated calls must agree")
	}
}
