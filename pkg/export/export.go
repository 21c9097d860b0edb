// Package export writes prediction frames to CSV or JSON for display
// and reporting collaborators.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/predlab/predeval/core/prediction"
)

// WriteCSV writes the frame to w in CSV format. When the frame carries
// row labels, an unnamed index column is emitted first.
func WriteCSV(w io.Writer, f *prediction.Frame) error {
	cw := csv.NewWriter(w)
	header := f.Columns
	if f.Index != nil {
		header = append([]string{""}, f.Columns...)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range f.Rows {
		rec := make([]string, 0, len(row)+1)
		if f.Index != nil {
			rec = append(rec, f.Index[i])
		}
		for _, v := range row {
			rec = append(rec, formatValue(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the frame to w as an array of column-keyed objects.
// Undefined values (NaN, ±Inf) become null, which the JSON encoder
// cannot represent otherwise.
func WriteJSON(w io.Writer, f *prediction.Frame) error {
	out := make([]map[string]any, len(f.Rows))
	for i, row := range f.Rows {
		m := make(map[string]any, len(row)+1)
		if f.Index != nil {
			m["Index"] = f.Index[i]
		}
		for j, c := range f.Columns {
			m[c] = jsonSafe(row[j])
		}
		out[i] = m
	}
	return json.NewEncoder(w).Encode(out)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func jsonSafe(v any) any {
	if x, ok := v.(float64); ok && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return nil
	}
	return v
}
