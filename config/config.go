// Package config loads the evaluation configuration from yaml or json
// files with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/predlab/predeval/core/metrics"
)

type Config struct {
	Dataset    DatasetConfig    `json:"dataset"`
	Evaluation EvaluationConfig `json:"evaluation"`
	Metrics    metrics.Config   `json:"metrics"`
	Logging    LoggingConfig    `json:"logging"`
}

// Load reads the configuration at path, applies P_-prefixed environment
// overrides (P_EVALUATION__KIND maps to evaluation.kind), fills
// defaults and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("P_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "p_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Evaluation.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Dataset.SetDefaults()
	if err := cfg.Dataset.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Evaluation.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
