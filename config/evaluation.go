package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DatasetConfig points at the file holding the aligned sequences.
type DatasetConfig struct {
	// Path to the dataset file (.csv, .json, .yaml).
	Path string `json:"path"`
	// Name labels the run in reports and sinks.
	Name string `json:"name"`
}

// SetDefaults derives the name from the file when not set.
func (c *DatasetConfig) SetDefaults() {
	if c.Name == "" && c.Path != "" {
		c.Name = strings.TrimSuffix(filepath.Base(c.Path), filepath.Ext(c.Path))
	}
}

// Validate checks mandatory fields.
func (c DatasetConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("dataset path is required")
	}
	return nil
}

// EvaluationConfig selects the prediction kind and its parameters.
type EvaluationConfig struct {
	// Kind selects the prediction variant: "generic", "numeric" or "binary".
	Kind string `json:"kind"`
	// ValuePositive marks the positive class for binary predictions,
	// compared against the dataset's raw values.
	ValuePositive string `json:"value_positive"`
	// Tolerance is the matching tolerance for numeric predictions.
	Tolerance float64 `json:"tolerance"`
}

// SetDefaults applies sane defaults.
func (c *EvaluationConfig) SetDefaults() {
	if c.Kind == "" {
		c.Kind = "generic"
	}
	if c.ValuePositive == "" {
		c.ValuePositive = "1"
	}
}

// Validate checks the kind and tolerance.
func (c EvaluationConfig) Validate() error {
	switch c.Kind {
	case "generic", "numeric", "binary":
	default:
		return fmt.Errorf("unknown evaluation kind %s", c.Kind)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative")
	}
	return nil
}
