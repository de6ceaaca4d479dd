package engine

import (
	"github.com/Fmanuel809/validra-sub002/pkg/cachemgr"
	"github.com/Fmanuel809/validra-sub002/pkg/pool"
)

// Metrics is the engine's full observability surface: cache effectiveness,
// pool reuse, error-handler tallies, callback-manager state, and cumulative
// record throughput.
type Metrics struct {
	Caches           cachemgr.Metrics
	Pool             []pool.Metrics
	ErrorHandler     ErrorHandlerMetrics
	CallbackManager  CallbackManagerMetrics
	RecordsValidated int64
	RecordsFailed    int64
}

// ErrorHandlerMetrics tallies the diagnostic kinds evaluate has produced
// since the engine was created. ClearCaches does not reset these counts.
type ErrorHandlerMetrics struct {
	HelperFailures int64
	TypeMismatches int64
}

// CallbackManagerMetrics reports the callback manager's registered state.
type CallbackManagerMetrics struct {
	ActiveCallbacks int
}
