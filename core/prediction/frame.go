package prediction

// Column names used by the frame exports. External tools rely on these
// exact strings.
const (
	ColFitted  = "Fitted Values"
	ColReal    = "Real Values"
	ColMatches = "Prediction Matches"
	// ColAbsDiff holds the signed residual despite its name; the string
	// is part of the export contract.
	ColAbsDiff = "Absolute difference"
	ColRelDiff = "Relative difference"
)

// Frame is a row-aligned table suitable for handing to a display or
// reporting collaborator. Rows[i][j] belongs to Columns[j]. Index holds
// optional row labels and is nil for element-wise frames.
type Frame struct {
	Columns []string
	Index   []string
	Rows    [][]any
}

// NumRows returns the number of rows in the frame.
func (f *Frame) NumRows() int { return len(f.Rows) }
