// Package rulesetcfg loads a declarative rule set — the engine's rules plus
// its runtime options — from YAML: a project file found by walking up from
// a start directory, merged over a built-in default.
package rulesetcfg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Fmanuel809/validra-sub002/pkg/engine"
	"github.com/Fmanuel809/validra-sub002/pkg/rule"
)

// RuleSet is the on-disk shape of a rule set file.
type RuleSet struct {
	Version int           `yaml:"version"`
	Options OptionsConfig `yaml:"options"`
	Rules   []RuleEntry   `yaml:"rules"`
}

// OptionsConfig mirrors engine.Options in YAML-friendly form.
type OptionsConfig struct {
	Debug              bool `yaml:"debug,omitempty"`
	Silent             bool `yaml:"silent,omitempty"`
	EnableMemoryPool   bool `yaml:"enable_memory_pool,omitempty"`
	MemoryPoolSize     int  `yaml:"memory_pool_size,omitempty"`
	EnableStreaming    bool `yaml:"enable_streaming,omitempty"`
	StreamingChunkSize int  `yaml:"streaming_chunk_size,omitempty"`
	FailFast           bool `yaml:"fail_fast,omitempty"`
	MaxErrors          int  `yaml:"max_errors,omitempty"`
}

// RuleEntry is one rule declaration. A param value of the form
// {"$field": "otherPath"} is a cross-field reference, converted to a
// rule.FieldRef by ToRules.
type RuleEntry struct {
	Op       string         `yaml:"op"`
	Field    string         `yaml:"field"`
	Params   map[string]any `yaml:"params,omitempty"`
	Negative bool           `yaml:"negative,omitempty"`
	Message  string         `yaml:"message,omitempty"`
}

// DefaultRuleSet returns an empty, version-1 rule set with no rules.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version: 1,
		Options: OptionsConfig{
			MemoryPoolSize:     256,
			StreamingChunkSize: 100,
		},
	}
}

// LoadRuleSet reads and parses a rule set file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule set file: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rule set file: %w", err)
	}
	return &rs, nil
}

// FindRuleSet searches for .validra.yaml or validra.yaml in startDir and its
// parents, returning "" when none is found.
func FindRuleSet(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range []string{".validra.yaml", "validra.yaml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadRuleSetWithDefaults finds and loads a project rule set, merged over
// DefaultRuleSet. With no project file found, the defaults are returned
// unchanged.
func LoadRuleSetWithDefaults(projectRoot string) (*RuleSet, error) {
	rs := DefaultRuleSet()

	path, err := FindRuleSet(projectRoot)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return rs, nil
	}

	projectRS, err := LoadRuleSet(path)
	if err != nil {
		return nil, err
	}
	return MergeRuleSets(rs, projectRS), nil
}

// MergeRuleSets merges override over base: scalar options set in override
// replace base's, and override's rules are appended after base's.
func MergeRuleSets(base, override *RuleSet) *RuleSet {
	result := &RuleSet{
		Version: override.Version,
		Options: base.Options,
		Rules:   append(append([]RuleEntry{}, base.Rules...), override.Rules...),
	}

	if override.Options.MemoryPoolSize > 0 {
		result.Options.MemoryPoolSize = override.Options.MemoryPoolSize
	}
	if override.Options.StreamingChunkSize > 0 {
		result.Options.StreamingChunkSize = override.Options.StreamingChunkSize
	}
	if override.Options.MaxErrors > 0 {
		result.Options.MaxErrors = override.Options.MaxErrors
	}
	result.Options.Debug = result.Options.Debug || override.Options.Debug
	result.Options.Silent = result.Options.Silent || override.Options.Silent
	result.Options.EnableMemoryPool = result.Options.EnableMemoryPool || override.Options.EnableMemoryPool
	result.Options.EnableStreaming = result.Options.EnableStreaming || override.Options.EnableStreaming
	result.Options.FailFast = result.Options.FailFast || override.Options.FailFast

	return result
}

// ToRules converts the declared entries into rule.Rule values, resolving
// the {"$field": path} convention into rule.FieldRef parameters.
func (rs *RuleSet) ToRules() []rule.Rule {
	rules := make([]rule.Rule, 0, len(rs.Rules))
	for _, entry := range rs.Rules {
		rules = append(rules, rule.Rule{
			Op:       entry.Op,
			Field:    entry.Field,
			Params:   resolveFieldRefs(entry.Params),
			Negative: entry.Negative,
			Message:  entry.Message,
		})
	}
	return rules
}

func resolveFieldRefs(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		if m, ok := v.(map[string]any); ok {
			if path, ok := m["$field"].(string); ok && len(m) == 1 {
				out[k] = rule.FieldRef{Path: path}
				continue
			}
		}
		out[k] = v
	}
	return out
}

// ToOptions converts the declared options into engine.Option values.
func (rs *RuleSet) ToOptions() []engine.Option {
	o := rs.Options
	return []engine.Option{
		engine.WithDebug(o.Debug),
		engine.WithSilent(o.Silent),
		engine.WithMemoryPool(o.EnableMemoryPool),
		engine.WithMemoryPoolSize(o.MemoryPoolSize),
		engine.WithStreaming(o.EnableStreaming),
		engine.WithStreamingChunkSize(o.StreamingChunkSize),
		engine.WithFailFast(o.FailFast),
		engine.WithMaxErrors(o.MaxErrors),
	}
}
