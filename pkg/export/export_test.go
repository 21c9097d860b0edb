package export

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/predlab/predeval/core/prediction"
)

func TestWriteCSV(t *testing.T) {
	p, err := prediction.New([]int{1, 2}, []int{1, 0})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, p.AsFrame()); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "Fitted Values,Real Values,Prediction Matches\n1,1,true\n2,0,false\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteCSVWithIndex(t *testing.T) {
	p, err := prediction.NewBinary([]int{1, 1, 0, 0}, []int{1, 0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, p.ConfusionFrame()); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ",Negative,Positive\nNegative,2,1\nPositive,0,1\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	p, err := prediction.NewNumeric([]float64{1, 2}, []float64{0, 4})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, p.AsFrame()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows got %d", len(rows))
	}
	// relative difference diverges on the first row and must be null
	if rows[0][prediction.ColRelDiff] != nil {
		t.Fatalf("expected null relative difference got %v", rows[0][prediction.ColRelDiff])
	}
	if rows[1][prediction.ColRelDiff] != 0.5 {
		t.Fatalf("expected 0.5 got %v", rows[1][prediction.ColRelDiff])
	}
	if !math.IsInf(p.AsFrame().Rows[0][4].(float64), -1) {
		t.Fatalf("frame itself keeps the Inf sentinel")
	}
}
