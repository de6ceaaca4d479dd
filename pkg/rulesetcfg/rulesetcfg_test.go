package rulesetcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fmanuel809/validra-sub002/pkg/rule"
)

func TestDefaultRuleSet(t *testing.T) {
	rs := DefaultRuleSet()
	assert.Equal(t, 1, rs.Version)
	assert.Equal(t, 256, rs.Options.MemoryPoolSize)
	assert.Empty(t, rs.Rules)
}

func TestLoadRuleSetParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "validra.yaml")
	content := `
version: 1
options:
  fail_fast: true
rules:
  - op: isEmail
    field: email
  - op: matchesField
    field: confirmPassword
    params:
      otherValue:
        $field: password
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rs, err := LoadRuleSet(path)
	require.NoError(t, err)
	assert.True(t, rs.Options.FailFast)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, "isEmail", rs.Rules[0].Op)
}

func TestFindRuleSetWalksUpParents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "validra.yaml"), []byte("version: 1\n"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindRuleSet(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "validra.yaml"), found)
}

func TestFindRuleSetReturnsEmptyWhenMissing(t *testing.T) {
	dir := t.TempDir()
	found, err := FindRuleSet(dir)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestToRulesResolvesFieldRefs(t *testing.T) {
	rs := &RuleSet{Rules: []RuleEntry{
		{Op: "matchesField", Field: "confirmPassword", Params: map[string]any{
			"otherValue": map[string]any{"$field": "password"},
		}},
	}}

	rules := rs.ToRules()
	require.Len(t, rules, 1)
	assert.Equal(t, rule.FieldRef{Path: "password"}, rules[0].Params["otherValue"])
}

func TestMergeRuleSetsAppendsRulesAndOverridesOptions(t *testing.T) {
	base := DefaultRuleSet()
	base.Rules = []RuleEntry{{Op: "isString", Field: "name"}}

	override := &RuleSet{
		Version: 2,
		Options: OptionsConfig{FailFast: true},
		Rules:   []RuleEntry{{Op: "isEmail", Field: "email"}},
	}

	merged := MergeRuleSets(base, override)
	assert.Equal(t, 2, merged.Version)
	assert.True(t, merged.Options.FailFast)
	assert.Len(t, merged.Rules, 2)
}
