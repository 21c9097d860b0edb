package prediction

import "errors"

// ErrNoNegativeValue is returned when every real value equals the
// positive one, so no negative class can be derived.
var ErrNoNegativeValue = errors.New("real values contain no value other than the positive one")

// BinaryPrediction evaluates two-class predictions. One value of the
// domain is designated as the positive, or treatment, class; every
// other value counts as negative.
type BinaryPrediction[T comparable] struct {
	Prediction[T]
	valuePositive T
}

// NewBinary builds a BinaryPrediction from two aligned sequences and
// the value marking the positive class.
func NewBinary[T comparable](fitted, real []T, valuePositive T) (*BinaryPrediction[T], error) {
	p, err := New(fitted, real)
	if err != nil {
		return nil, err
	}
	return &BinaryPrediction[T]{Prediction: *p, valuePositive: valuePositive}, nil
}

// ValuePositive returns the value treated as the positive class.
func (p *BinaryPrediction[T]) ValuePositive() T { return p.valuePositive }

// ValueNegative returns the first real value different from the
// positive one, or ErrNoNegativeValue when there is none.
func (p *BinaryPrediction[T]) ValueNegative() (T, error) {
	for _, v := range p.real {
		if v != p.valuePositive {
			return v, nil
		}
	}
	var zero T
	return zero, ErrNoNegativeValue
}

// classCounts tallies the four predicted/actual combinations plus the
// union counts used by sensitivity and specificity.
type classCounts struct {
	tn, fp, fn, tp int
	posUnion       int // predicted positive or actually positive
	negUnion       int // predicted negative or actually negative
}

func (p *BinaryPrediction[T]) counts() classCounts {
	var c classCounts
	for i, f := range p.fitted {
		predPos := f == p.valuePositive
		realPos := p.real[i] == p.valuePositive
		switch {
		case predPos && realPos:
			c.tp++
		case predPos && !realPos:
			c.fp++
		case !predPos && realPos:
			c.fn++
		default:
			c.tn++
		}
		if predPos || realPos {
			c.posUnion++
		}
		if !predPos || !realPos {
			c.negUnion++
		}
	}
	return c
}

// FalsePositiveRate returns the share of actual negatives predicted as
// positive. NaN or +Inf when there are no actual negatives.
func (p *BinaryPrediction[T]) FalsePositiveRate() float64 {
	c := p.counts()
	return float64(c.fp) / float64(c.fp+c.tn)
}

// FalseNegativeRate returns the share of actual positives predicted as
// negative. NaN or +Inf when there are no actual positives.
func (p *BinaryPrediction[T]) FalseNegativeRate() float64 {
	c := p.counts()
	return float64(c.fn) / float64(c.fn+c.tp)
}

// Sensitivity returns the caught positives over the union of predicted
// and actual positives. The union denominator differs from the
// textbook recall definition and is intentional. NaN when the union is
// empty.
func (p *BinaryPrediction[T]) Sensitivity() float64 {
	c := p.counts()
	return float64(c.tp) / float64(c.posUnion)
}

// Specificity returns the caught negatives over the union of predicted
// and actual negatives, mirroring Sensitivity. NaN when the union is
// empty.
func (p *BinaryPrediction[T]) Specificity() float64 {
	c := p.counts()
	return float64(c.tn) / float64(c.negUnion)
}

// ConfusionMatrix returns the 2x2 count table [[TN, FP], [FN, TP]]:
// row 0 holds the actual negatives, row 1 the actual positives, column
// 0 the predicted negatives, column 1 the predicted positives.
func (p *BinaryPrediction[T]) ConfusionMatrix() [2][2]int {
	c := p.counts()
	return [2][2]int{{c.tn, c.fp}, {c.fn, c.tp}}
}

// ConfusionFrame returns the confusion matrix as a labeled frame with
// Negative/Positive rows (actual) and columns (predicted).
func (p *BinaryPrediction[T]) ConfusionFrame() *Frame {
	m := p.ConfusionMatrix()
	return &Frame{
		Columns: []string{"Negative", "Positive"},
		Index:   []string{"Negative", "Positive"},
		Rows: [][]any{
			{m[0][0], m[0][1]},
			{m[1][0], m[1][1]},
		},
	}
}
