// Package dataset loads aligned fitted/real value pairs from CSV, JSON
// or YAML files. Values are kept as raw strings; Numeric converts them
// on demand for continuous-valued predictions.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set holds one aligned pair of sequences read from a file.
type Set struct {
	Name   string
	Fitted []string
	Real   []string
}

type document struct {
	Fitted []any `json:"fitted" yaml:"fitted"`
	Real   []any `json:"real" yaml:"real"`
}

// Load reads a dataset from the given path. The format is picked from
// the file extension: .csv expects a header row "fitted,real", .json
// and .yaml/.yml expect an object with fitted and real arrays.
func Load(path string) (*Set, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		s   *Set
		err error
	)
	switch ext {
	case ".csv":
		s, err = readCSV(path)
	case ".json":
		s, err = readStructured(path, json.Unmarshal)
	case ".yaml", ".yml":
		s, err = readStructured(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", ext)
	}
	if err != nil {
		return nil, err
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), ext)
	return s, nil
}

func readCSV(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}
	header := records[0]
	fittedCol, realCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "fitted":
			fittedCol = i
		case "real":
			realCol = i
		}
	}
	if fittedCol < 0 || realCol < 0 {
		return nil, fmt.Errorf("read %s: header must contain fitted and real columns", path)
	}
	s := &Set{}
	for _, rec := range records[1:] {
		s.Fitted = append(s.Fitted, rec[fittedCol])
		s.Real = append(s.Real, rec[realCol])
	}
	return s, nil
}

func readStructured(path string, unmarshal func([]byte, any) error) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Set{Fitted: toStrings(doc.Fitted), Real: toStrings(doc.Real)}, nil
}

func toStrings(values []any) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case string:
			out[i] = x
		case float64:
			out[i] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}

// Numeric converts both sequences to floats.
func (s *Set) Numeric() (fitted, real []float64, err error) {
	fitted, err = parseFloats(s.Fitted)
	if err != nil {
		return nil, nil, fmt.Errorf("fitted values: %w", err)
	}
	real, err = parseFloats(s.Real)
	if err != nil {
		return nil, nil, fmt.Errorf("real values: %w", err)
	}
	return fitted, real, nil
}

func parseFloats(values []string) ([]float64, error) {
	if values == nil {
		return nil, nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}
