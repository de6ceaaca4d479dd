// Package cachemgr aggregates the engine's two caches — the extractor's
// path-segment cache and the compiler's compiled-rule cache — behind one
// metrics surface and one clear-all operation.
package cachemgr

import (
	"github.com/Fmanuel809/validra-sub002/pkg/compiler"
	"github.com/Fmanuel809/validra-sub002/pkg/extract"
)

// Metrics is a combined snapshot of both underlying caches.
type Metrics struct {
	Extractor extract.Metrics
	Compiler  compiler.Metrics
}

// Manager ties an Extractor and a Compiler together for joint metrics and
// clearing. It holds no cache state of its own; each cache applies its own
// size cap.
type Manager struct {
	extractor *extract.Extractor
	compiler  *compiler.Compiler
}

// New creates a Manager over the given extractor and compiler.
func New(extractor *extract.Extractor, comp *compiler.Compiler) *Manager {
	return &Manager{extractor: extractor, compiler: comp}
}

// Metrics returns a combined snapshot of both caches.
func (m *Manager) Metrics() Metrics {
	return Metrics{
		Extractor: m.extractor.Metrics(),
		Compiler:  m.compiler.Metrics(),
	}
}

// ClearCaches empties both underlying caches.
func (m *Manager) ClearCaches() {
	m.extractor.ClearCache()
	m.compiler.ClearCache()
}
