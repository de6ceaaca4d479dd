// Package compiler turns declared rule.Rule values into CompiledRule values
// ready for the engine to execute, resolving each rule's helper once and
// caching the result keyed by the rule's structural fingerprint so that
// identical rules declared across many rule sets compile only once.
package compiler

import (
	"sync"
	"sync/atomic"

	"github.com/Fmanuel809/validra-sub002/pkg/helper"
	"github.com/Fmanuel809/validra-sub002/pkg/rule"
	"github.com/Fmanuel809/validra-sub002/pkg/verrors"
)

// CompiledRule is a rule.Rule paired with its resolved helper schema —
// everything the engine needs to execute it without a further registry
// lookup.
type CompiledRule struct {
	Rule     rule.Rule
	Resolver helper.Resolver
	Async    bool
	Params   []string
}

// Metrics is a snapshot of the compiled-rule cache's activity.
type Metrics struct {
	Hits    int64
	Misses  int64
	Entries int64
}

// defaultCapacity bounds the compiled-rule cache so a workload compiling an
// unbounded variety of rule shapes can't grow it without limit.
const defaultCapacity = 4096

// Compiler compiles rule.Rule values against a helper registry, caching
// compiled results by fingerprint.
type Compiler struct {
	registry *helper.Registry
	capacity int
	cache    sync.Map // map[string]CompiledRule

	hits    atomic.Int64
	misses  atomic.Int64
	entries atomic.Int64
}

// New creates a Compiler resolving helpers against registry, with its
// compiled-rule cache bounded to defaultCapacity entries. A nil registry
// falls back to the global helper catalogue.
func New(registry *helper.Registry) *Compiler {
	if registry == nil {
		registry = helper.Global()
	}
	return &Compiler{registry: registry, capacity: defaultCapacity}
}

// NewWithCapacity creates a Compiler whose compiled-rule cache evicts an
// arbitrary entry once it would exceed capacity entries.
func NewWithCapacity(registry *helper.Registry, capacity int) *Compiler {
	c := New(registry)
	if capacity > 0 {
		c.capacity = capacity
	}
	return c
}

// Compile resolves r's helper and returns a CompiledRule, serving a cached
// result when an identical rule (by Fingerprint) was compiled before.
func (c *Compiler) Compile(r rule.Rule) (CompiledRule, error) {
	key := r.Fingerprint()

	if cached, ok := c.cache.Load(key); ok {
		c.hits.Add(1)
		return cached.(CompiledRule), nil
	}

	c.misses.Add(1)

	schema, err := c.registry.Resolve(r.Op)
	if err != nil {
		return CompiledRule{}, verrors.UnknownHelper("cannot compile rule for op \"" + r.Op + "\": " + err.Error()).WithCause(err)
	}
	for _, name := range schema.Params {
		if _, ok := r.Params[name]; !ok {
			return CompiledRule{}, verrors.InvalidRule("rule for op \"" + r.Op + "\" is missing parameter \"" + name + "\"")
		}
	}

	compiled := CompiledRule{
		Rule:     r,
		Resolver: schema.Resolver,
		Async:    schema.Async,
		Params:   schema.Params,
	}

	if int(c.entries.Load()) >= c.capacity {
		// Evict one arbitrary entry before inserting: sync.Map has no
		// ordered iteration, so this is a coarse size cap, not true LRU.
		c.cache.Range(func(k, _ any) bool {
			c.cache.Delete(k)
			c.entries.Add(-1)
			return false
		})
	}

	if _, loaded := c.cache.LoadOrStore(key, compiled); !loaded {
		c.entries.Add(1)
	}
	return compiled, nil
}

// CompileAll compiles every rule in rules, stopping at the first error.
func (c *Compiler) CompileAll(rules []rule.Rule) ([]CompiledRule, error) {
	out := make([]CompiledRule, 0, len(rules))
	for _, r := range rules {
		compiled, err := c.Compile(r)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled)
	}
	return out, nil
}

// Metrics returns a snapshot of the compiled-rule cache's activity.
func (c *Compiler) Metrics() Metrics {
	return Metrics{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.entries.Load(),
	}
}

// ClearCache empties the compiled-rule cache without resetting counters.
func (c *Compiler) ClearCache() {
	c.cache.Range(func(key, _ any) bool {
		c.cache.Delete(key)
		return true
	})
	c.entries.Store(0)
}
