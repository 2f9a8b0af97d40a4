// Package config loads the planner configuration from YAML or JSON files with
// optional environment overrides.
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
)

type Config struct {
	Event   EventConfig   `json:"event"`
	Input   InputConfig   `json:"input"`
	Output  OutputConfig  `json:"output"`
	Logging LoggingConfig `json:"logging"`
}

// Load reads the configuration at path. Environment variables prefixed with
// BP_ override file values, with "__" separating key segments
// (e.g. BP_EVENT__SEED=7).
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
	if err := k.Load(env.Provider("BP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "bp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Event.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Event.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Input.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
