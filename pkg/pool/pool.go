// Package pool provides a bounded, per-kind object pool used by the engine
// to reuse scratch allocations (argument slices, diagnostic buffers) across
// record validations, with externally observable hit/miss/return counters.
package pool

import "sync"

// Metrics is a snapshot of a single kind's pool activity.
type Metrics struct {
	Kind      string
	Hits      int64
	Misses    int64
	Returns   int64
	Allocated int64
	Size      int
}

// Pool holds free lists keyed by kind, each bounded to maxSize. New(kind)
// is supplied by the caller so the pool stays agnostic of what it stores.
type Pool struct {
	mu      sync.Mutex
	maxSize int
	free    map[string][]any
	hits    map[string]int64
	misses  map[string]int64
	returns map[string]int64
	allocs  map[string]int64
	newFns  map[string]func() any
}

// New creates a pool where every kind's free list is capped at maxSize.
func New(maxSize int) *Pool {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Pool{
		maxSize: maxSize,
		free:    make(map[string][]any),
		hits:    make(map[string]int64),
		misses:  make(map[string]int64),
		returns: make(map[string]int64),
		allocs:  make(map[string]int64),
		newFns:  make(map[string]func() any),
	}
}

// Register associates a kind with its allocation function. Get calls newFn
// on a miss; Register is idempotent (later calls overwrite the function).
func (p *Pool) Register(kind string, newFn func() any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.newFns[kind] = newFn
}

// Get returns a pooled value of kind, allocating a fresh one via the
// registered constructor on a miss.
func (p *Pool) Get(kind string) any {
	p.mu.Lock()
	defer p.mu.Unlock()

	if list := p.free[kind]; len(list) > 0 {
		v := list[len(list)-1]
		p.free[kind] = list[:len(list)-1]
		p.hits[kind]++
		return v
	}

	p.misses[kind]++
	p.allocs[kind]++
	newFn := p.newFns[kind]
	if newFn == nil {
		return nil
	}
	return newFn()
}

// Put returns v to the kind's free list. Values beyond maxSize are dropped
// rather than retained, keeping pool growth bounded under bursty load.
func (p *Pool) Put(kind string, v any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.returns[kind]++
	if len(p.free[kind]) >= p.maxSize {
		return
	}
	p.free[kind] = append(p.free[kind], v)
}

// Clear empties every kind's free list without resetting counters.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.free {
		p.free[k] = nil
	}
}

// Metrics returns a snapshot for one kind.
func (p *Pool) Metrics(kind string) Metrics {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Metrics{
		Kind:      kind,
		Hits:      p.hits[kind],
		Misses:    p.misses[kind],
		Returns:   p.returns[kind],
		Allocated: p.allocs[kind],
		Size:      len(p.free[kind]),
	}
}

// AllMetrics returns a snapshot for every kind that has been touched.
func (p *Pool) AllMetrics() []Metrics {
	p.mu.Lock()
	kinds := make(map[string]struct{})
	for k := range p.free {
		kinds[k] = struct{}{}
	}
	for k := range p.hits {
		kinds[k] = struct{}{}
	}
	for k := range p.misses {
		kinds[k] = struct{}{}
	}
	p.mu.Unlock()

	out := make([]Metrics, 0, len(kinds))
	for k := range kinds {
		out = append(out, p.Metrics(k))
	}
	return out
}
